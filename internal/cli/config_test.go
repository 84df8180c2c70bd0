package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("a missing default file is fine", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("reads the default file from the home directory", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, defaultConfigName), []byte("host: tcp://127.0.0.1:2375\n"), 0o600))

		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "tcp://127.0.0.1:2375", cfg.Host)
	})

	t.Run("an explicitly named missing file is an error", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("parses host api version and timeout", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dockhand.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: unix:///run/user/1000/docker.sock\napi_version: \"1.41\"\ntimeout: 45s\n"), 0o600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "unix:///run/user/1000/docker.sock", cfg.Host)
		assert.Equal(t, "1.41", cfg.APIVersion)
		assert.Equal(t, 45*time.Second, cfg.Timeout)
	})

	t.Run("rejects a bad timeout with a hint", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dockhand.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout: forever\n"), 0o600))

		_, err := loadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `failed to parse timeout "forever"`)
		assert.Contains(t, err.Error(), "30s")
	})

	t.Run("rejects broken yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dockhand.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: [\n"), 0o600))

		_, err := loadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
		assert.Contains(t, err.Error(), "YAML")
	})
}

func TestRootFlagsApply(t *testing.T) {
	t.Run("flags override the file", func(t *testing.T) {
		cfg := Config{Host: "unix:///var/run/docker.sock", APIVersion: "1.40", Timeout: time.Minute}
		flags := rootFlags{host: "tcp://127.0.0.1:2375", apiVersion: "1.41", timeout: "10s"}

		require.NoError(t, flags.apply(&cfg))
		assert.Equal(t, "tcp://127.0.0.1:2375", cfg.Host)
		assert.Equal(t, "1.41", cfg.APIVersion)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("unset flags leave the file values alone", func(t *testing.T) {
		cfg := Config{Host: "unix:///var/run/docker.sock", APIVersion: "1.40", Timeout: time.Minute}

		require.NoError(t, rootFlags{}.apply(&cfg))
		assert.Equal(t, "unix:///var/run/docker.sock", cfg.Host)
		assert.Equal(t, "1.40", cfg.APIVersion)
		assert.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("rejects a bad timeout flag", func(t *testing.T) {
		cfg := Config{}
		err := rootFlags{timeout: "soon"}.apply(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `failed to parse --timeout "soon"`)
	})
}
