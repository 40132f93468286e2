package logger

import (
	"testing"

	"workload_survey/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestApplyConfig_SwitchesLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	ApplyConfig(cfg)
	assert.Equal(t, zap.DebugLevel, Level())

	cfg.Server.Mode = "release"
	ApplyConfig(cfg)
	assert.Equal(t, zap.InfoLevel, Level())
}
