package providers

import (
	"os"
	"path/filepath"
	"testing"

	"ctfwatch/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggerConfig(dir string) *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir))
	require.NoError(t, err)
	defer logger.Close()

	// Should be able to log without error
	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeSweep, "sweep message")
	logger.Warnf(TypeSource, "source message")

	for _, name := range []string{"app.log", "http.log", "sweep.log", "source.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s to exist", name)
	}
}

func TestNewLogProvider_WritesToTypedSink(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir))
	require.NoError(t, err)

	logger.Infof(TypeSweep, "reminder dispatched")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "sweep.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "reminder dispatched")

	appData, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(appData), "reminder dispatched")
}

func TestNewLogProvider_LevelFiltersDebug(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir))
	require.NoError(t, err)

	logger.Debugf(TypeApp, "suppressed detail")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed detail")
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := loggerConfig(t.TempDir())
	conf.Logger.Level = "shouty"

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	_, err := NewLogProvider(loggerConfig("/nonexistent/directory/path"))
	assert.Error(t, err)
}
