package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojolog/internal/config"
)

func Test_New_WritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(&config.Config{Env: "production", LogLevel: "info", LogFile: path})
	require.NoError(t, err)

	log.Info("entry saved")
	log.Debug("below level")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"entry saved"`)
	assert.NotContains(t, string(data), "below level")
}

func Test_New_RejectsUnknownLevel(t *testing.T) {
	_, err := New(&config.Config{LogLevel: "chatty"})
	assert.Error(t, err)
}
