package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"workload_survey/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_AppliesUnitsAndDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: test
admin:
  token_ttl_hours: 2
remote:
  url: http://remote.example/exec
  fetch_timeout_seconds: 3
storage:
  type: minio
survey:
  session_ttl_minutes: 5
`)
	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "1839", cfg.Admin.Password)
	assert.Equal(t, 2*time.Hour, cfg.Admin.TokenTTL)
	assert.Equal(t, 3*time.Second, cfg.Remote.FetchTimeout)
	assert.Equal(t, 10*time.Second, cfg.Remote.PushTimeout)
	assert.Equal(t, 64, cfg.Remote.QueueSize)
	assert.Equal(t, 5*time.Minute, cfg.Survey.SessionTTL)
	assert.Equal(t, "sqlite", cfg.Store.Type)
	assert.Equal(t, "survey_app_data", cfg.Store.SnapshotKey)
	assert.Equal(t, "http://remote.example/exec", cfg.Remote.URL)
}

func TestLoadConfig_RejectsShortSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
admin:
  jwt_secret: short
storage:
  type: minio
`)
	_, err := config.LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "local", cfg.Storage.Type)
}
