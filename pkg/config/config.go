package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	envFile           = ".env"
	DefaultTodoistURL = "https://api.todoist.com/rest/v2"
)

// Environment keys.
const (
	KeyNotionKey     = "NOTION_KEY"
	KeyTodoistKey    = "TODOIST_KEY"
	KeyTasksDB       = "NOTION_TASKS_DB"
	KeyProjectsDB    = "NOTION_PROJECTS_DB"
	KeyAreasDB       = "NOTION_AREAS_DB"
	KeyAreaColour    = "TODOIST_AREA_COLOUR"
	KeyProjectColour = "TODOIST_PROJECT_COLOUR"
	KeyTodoistURL    = "TODOIST_API_URL"
	KeyLogFile       = "LOG_FILE"
)

type Config struct {
	NotionKey     string
	TodoistKey    string
	TasksDB       string
	ProjectsDB    string
	AreasDB       string
	AreaColour    string
	ProjectColour string
	TodoistURL    string
	LogFile       string
}

// Load reads configuration from the environment, falling back to a .env file
// in the working directory. Real environment variables win over the file.
func Load() (*Config, error) {
	return LoadFile(envFile)
}

// LoadFile is Load with an explicit dotenv path. An empty path or a missing
// file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyTodoistURL, DefaultTodoistURL)
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	cfg := &Config{
		NotionKey:     v.GetString(KeyNotionKey),
		TodoistKey:    v.GetString(KeyTodoistKey),
		TasksDB:       v.GetString(KeyTasksDB),
		ProjectsDB:    v.GetString(KeyProjectsDB),
		AreasDB:       v.GetString(KeyAreasDB),
		AreaColour:    v.GetString(KeyAreaColour),
		ProjectColour: v.GetString(KeyProjectColour),
		TodoistURL:    strings.TrimRight(v.GetString(KeyTodoistURL), "/"),
		LogFile:       v.GetString(KeyLogFile),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrMissing is wrapped by Validate when required keys are unset.
var ErrMissing = errors.New("missing required configuration")

// Validate checks that every required key is set.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		key, val string
	}{
		{KeyNotionKey, c.NotionKey},
		{KeyTodoistKey, c.TodoistKey},
		{KeyTasksDB, c.TasksDB},
		{KeyProjectsDB, c.ProjectsDB},
		{KeyAreasDB, c.AreasDB},
	}
	for _, r := range required {
		if r.val == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}
	return nil
}
