package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file that sets only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the rest falls back to defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.SessionTTL)
		assert.Equal(t, "minimax", conf.Engine.Opponent)
		assert.False(t, conf.Engine.SearchOpening)
	})

	t.Run("Reads engine section", func(t *testing.T) {
		// Given: a config file that asks for a searched opening
		path := writeConfig(t, "engine:\n  opponent: random\n  search-opening: true\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the engine section is honoured
		require.NoError(t, err)
		assert.Equal(t, "random", conf.Engine.Opponent)
		assert.True(t, conf.Engine.SearchOpening)
	})

	t.Run("Fails on missing file", func(t *testing.T) {
		// When: loading a file that does not exist
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		// Then: an error is returned
		require.Error(t, err)
	})

	t.Run("MustLoad panics on missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}
