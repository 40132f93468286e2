package configwatcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"workload_survey/internal/config"
	"workload_survey/pkg/configwatcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig_ReloadsAfterWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("server:\n  mode: debug\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	load := func(string) (*config.Config, error) {
		cfg := &config.Config{}
		cfg.Server.Mode = "release"
		return cfg, nil
	}
	done := make(chan error, 1)
	go func() {
		done <- configwatcher.WatchConfig(ctx, file, load, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// give the watcher time to register before writing
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte("server:\n  mode: release\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "release", cfg.Server.Mode)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
