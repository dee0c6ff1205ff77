package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	def := Default()
	assert.Equal(t, def.Server, cfg.Server)
	assert.Equal(t, def.Steps, cfg.Steps)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, def.Reminder.Workdays, cfg.Reminder.Workdays)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  addr: ":8088"
  timeout: 3s
store:
  driver: Firestore
  project_id: smartstep-dev
steps:
  objective: 12000
reminder:
  workdays: ["monday", " SAT "]
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":8088", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "http://localhost:3000", cfg.Server.URL)
	assert.Equal(t, "firestore", cfg.Store.Driver)
	assert.Equal(t, "smartstep-dev", cfg.Store.ProjectID)
	assert.Equal(t, 12000, cfg.Steps.Objective)
	assert.Equal(t, DefaultSteps, cfg.Steps.Current)
	assert.Equal(t, []string{"Mon", "Sat"}, cfg.Reminder.Workdays)
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("SMARTSTEP_SERVER_ADDR", ":9999")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
}

func TestWriteDefaultThenSetObjective(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	wrote, err := WriteDefault(path)
	require.NoError(t, err)
	assert.True(t, wrote)

	wrote, err = WriteDefault(path)
	require.NoError(t, err)
	assert.False(t, wrote)

	require.NoError(t, SetObjective(path, 8000))
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Steps.Objective)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
}

func TestStorePathExplicit(t *testing.T) {
	cfg := Default()
	cfg.Store.Path = "/tmp/custom.db"
	p, err := cfg.StorePath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", p)
}
