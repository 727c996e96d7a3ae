package logging

import (
	"bytes"
	"encoding/json"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewJSONLoggerWritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(Config{Level: "info", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Named("session").Info("session logged", zap.String("user", "alice"))
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "session", entry["logger"])
	assert.Equal(t, "session logged", entry["msg"])
	assert.Equal(t, "alice", entry["user"])
	assert.Contains(t, entry, "ts")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewConsoleLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(Config{Level: "warn", Format: "console", Output: &buf})
	require.NoError(t, err)

	logger.Info("scene loaded")
	logger.Warn("tried to end session before starting one")

	assert.NotContains(t, buf.String(), "scene loaded")
	assert.Contains(t, buf.String(), "tried to end session before starting one")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewDefaultConfig().Validate())

	err := Config{Level: "loud", Format: "json"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	err = Config{Level: "info", Format: "xml"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")

	_, err = New(Config{Level: "info", Format: "yaml"})
	assert.Error(t, err)
}

func TestIsStdoutSyncError(t *testing.T) {
	assert.True(t, isStdoutSyncError(syscall.EINVAL))
	assert.True(t, isStdoutSyncError(syscall.ENOTTY))
	assert.False(t, isStdoutSyncError(syscall.EACCES))
}
