package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cours-de-latin/tslamyu/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		cfg     config.LoggingConfig
		enabled zap.AtomicLevel
	}{
		{config.LoggingConfig{Level: "debug", Format: "console"}, zap.NewAtomicLevelAt(zap.DebugLevel)},
		{config.LoggingConfig{Level: "warn", Format: "json"}, zap.NewAtomicLevelAt(zap.WarnLevel)},
	}
	for _, tt := range tests {
		logger, err := New(tt.cfg)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(tt.enabled.Level()), tt.cfg.Level)
		assert.False(t, logger.Core().Enabled(tt.enabled.Level()-1), tt.cfg.Level)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)

	_, err = New(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
