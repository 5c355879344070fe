package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	KeyNotionKey, KeyTodoistKey, KeyTasksDB, KeyProjectsDB, KeyAreasDB,
	KeyAreaColour, KeyProjectColour, KeyTodoistURL, KeyLogFile,
}

// clearEnv blanks every key; viper ignores empty variables.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyNotionKey, "secret_notion")
	t.Setenv(KeyTodoistKey, "todoist-token")
	t.Setenv(KeyTasksDB, "tasks-db")
	t.Setenv(KeyProjectsDB, "projects-db")
	t.Setenv(KeyAreasDB, "areas-db")
	t.Setenv(KeyAreaColour, "berry_red")

	cfg, err := LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "secret_notion", cfg.NotionKey)
	assert.Equal(t, "todoist-token", cfg.TodoistKey)
	assert.Equal(t, "tasks-db", cfg.TasksDB)
	assert.Equal(t, "projects-db", cfg.ProjectsDB)
	assert.Equal(t, "areas-db", cfg.AreasDB)
	assert.Equal(t, "berry_red", cfg.AreaColour)
	assert.Equal(t, "", cfg.ProjectColour)
	assert.Equal(t, DefaultTodoistURL, cfg.TodoistURL)
}

func TestLoadFromDotenv(t *testing.T) {
	clearEnv(t)
	t.Setenv(KeyTodoistKey, "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	content := "NOTION_KEY=secret_file\n" +
		"TODOIST_KEY=from-file\n" +
		"NOTION_TASKS_DB=t\n" +
		"NOTION_PROJECTS_DB=p\n" +
		"NOTION_AREAS_DB=a\n" +
		"TODOIST_API_URL=http://localhost:9999/rest/v2/\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "secret_file", cfg.NotionKey)
	assert.Equal(t, "from-env", cfg.TodoistKey, "environment overrides the file")
	assert.Equal(t, "http://localhost:9999/rest/v2", cfg.TodoistURL)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	clearEnv(t)
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorIs(t, err, ErrMissing)
}

func TestValidateListsMissingKeys(t *testing.T) {
	cfg := &Config{NotionKey: "x", AreasDB: "a"}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrMissing)
	assert.Contains(t, err.Error(), KeyTodoistKey)
	assert.Contains(t, err.Error(), KeyTasksDB)
	assert.Contains(t, err.Error(), KeyProjectsDB)
	assert.NotContains(t, err.Error(), KeyNotionKey)
}
