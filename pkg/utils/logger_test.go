package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := InitLogger(dir, false)
	require.NoError(t, err)

	logger.Info("hello from test")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "customer-feedback.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestInitLogger_NoFileSink(t *testing.T) {
	logger, err := InitLogger("", true)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}
