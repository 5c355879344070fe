package main

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harrisonrobin/ntsync/pkg/config"
)

func TestRunMissingConfigurationExitsWithOne(t *testing.T) {
	for _, k := range []string{config.KeyNotionKey, config.KeyTodoistKey, config.KeyTasksDB, config.KeyProjectsDB, config.KeyAreasDB} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir()) // no .env to pick up

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.Equal(t, 1, run())
	assert.Contains(t, buf.String(), "Error loading configuration")
	assert.Contains(t, buf.String(), config.KeyNotionKey)
}
