package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults when file is missing", func(t *testing.T) {
		cfg, err := Load(envMap(map[string]string{
			EnvConfig: filepath.Join(t.TempDir(), "missing.yaml"),
		}))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})
	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "curl_bin: /usr/local/bin/curl\nshow_ip: true\nbody_limit: 64\n")
		cfg, err := Load(envMap(map[string]string{EnvConfig: path}))
		require.NoError(t, err)
		require.Equal(t, "/usr/local/bin/curl", cfg.CurlBin)
		require.True(t, cfg.ShowIP)
		require.Equal(t, 64, cfg.BodyLimit)
		require.False(t, cfg.ShowBody)
	})
	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "show_ip: true\nshow_speed: false\n")
		cfg, err := Load(envMap(map[string]string{
			EnvConfig:             path,
			"HTTPSTAT_SHOW_IP":    "false",
			"HTTPSTAT_SHOW_SPEED": "1",
			"HTTPSTAT_CURL_BIN":   "/opt/curl",
			"HTTPSTAT_DEBUG":      "true",
		}))
		require.NoError(t, err)
		require.False(t, cfg.ShowIP)
		require.True(t, cfg.ShowSpeed)
		require.True(t, cfg.Debug)
		require.Equal(t, "/opt/curl", cfg.CurlBin)
	})
	t.Run("malformed file", func(t *testing.T) {
		path := writeConfig(t, "show_ip: [\n")
		_, err := Load(envMap(map[string]string{EnvConfig: path}))
		require.Error(t, err)
	})
	t.Run("invalid file values fail validation", func(t *testing.T) {
		path := writeConfig(t, "curl_bin: \"\"\nbody_limit: -1\n")
		_, err := Load(envMap(map[string]string{EnvConfig: path}))
		require.Error(t, err)
		require.Len(t, multierr.Errors(err), 2)
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("empty values are ignored", func(t *testing.T) {
		cfg, err := FromEnv(Default(), envMap(map[string]string{
			"HTTPSTAT_SHOW_BODY": "",
			"HTTPSTAT_CURL_BIN":  "",
		}))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})
	t.Run("every malformed value is reported", func(t *testing.T) {
		_, err := FromEnv(Default(), envMap(map[string]string{
			"HTTPSTAT_SHOW_BODY":  "yes please",
			"HTTPSTAT_BODY_LIMIT": "lots",
			"HTTPSTAT_NO_COLOR":   "true",
		}))
		require.Error(t, err)
		errs := multierr.Errors(err)
		require.Len(t, errs, 2)
		require.Contains(t, err.Error(), "HTTPSTAT_SHOW_BODY")
		require.Contains(t, err.Error(), "HTTPSTAT_BODY_LIMIT")
	})
	t.Run("body limit", func(t *testing.T) {
		cfg, err := FromEnv(Default(), envMap(map[string]string{"HTTPSTAT_BODY_LIMIT": "10"}))
		require.NoError(t, err)
		require.Equal(t, 10, cfg.BodyLimit)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	cfg := Default()
	cfg.CurlBin = ""
	require.Error(t, cfg.Validate())
}
