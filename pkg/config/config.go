// Package config resolves httpstat settings from an optional YAML file and
// HTTPSTAT_* environment variables, in that order of precedence (lowest
// first).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/hbagdi/httpstat/pkg/util"
	"go.uber.org/multierr"
)

const (
	fileName         = "config.yaml"
	defaultBodyLimit = 1023

	EnvConfig    = "HTTPSTAT_CONFIG"
	envCurlBin   = "HTTPSTAT_CURL_BIN"
	envShowIP    = "HTTPSTAT_SHOW_IP"
	envShowBody  = "HTTPSTAT_SHOW_BODY"
	envBodyLimit = "HTTPSTAT_BODY_LIMIT"
	envSaveBody  = "HTTPSTAT_SAVE_BODY"
	envShowSpeed = "HTTPSTAT_SHOW_SPEED"
	envNoColor   = "HTTPSTAT_NO_COLOR"
	envDebug     = "HTTPSTAT_DEBUG"
)

type Config struct {
	CurlBin string `json:"curl_bin"`
	// ShowIP prints the remote and local endpoints of the connection.
	ShowIP   bool `json:"show_ip"`
	ShowBody bool `json:"show_body"`
	// BodyLimit caps the number of body bytes printed by ShowBody.
	BodyLimit int  `json:"body_limit"`
	SaveBody  bool `json:"save_body"`
	ShowSpeed bool `json:"show_speed"`
	NoColor   bool `json:"no_color"`
	Debug     bool `json:"debug"`
}

func Default() Config {
	return Config{
		CurlBin:   "curl",
		BodyLimit: defaultBodyLimit,
	}
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads the configuration file named by HTTPSTAT_CONFIG, or the
// default file in the user's config directory, and applies environment
// overrides. A missing file is not an error.
func Load(lookup LookupFunc) (Config, error) {
	path, ok := lookup(EnvConfig)
	if !ok || path == "" {
		dir, err := util.HTTPStatConfigDir()
		if err != nil {
			return Config{}, err
		}
		path = filepath.Join(dir, fileName)
	}
	cfg, err := ReadFile(Default(), path)
	if err != nil {
		return Config{}, err
	}
	cfg, err = FromEnv(cfg, lookup)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadFile overlays the YAML file at path onto cfg.
func ReadFile(cfg Config, path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file '%v': %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays HTTPSTAT_* variables onto cfg. Every malformed value is
// reported.
func FromEnv(cfg Config, lookup LookupFunc) (Config, error) {
	if v, ok := lookup(envCurlBin); ok && v != "" {
		cfg.CurlBin = v
	}
	err := multierr.Combine(
		envBool(lookup, envShowIP, &cfg.ShowIP),
		envBool(lookup, envShowBody, &cfg.ShowBody),
		envInt(lookup, envBodyLimit, &cfg.BodyLimit),
		envBool(lookup, envSaveBody, &cfg.SaveBody),
		envBool(lookup, envShowSpeed, &cfg.ShowSpeed),
		envBool(lookup, envNoColor, &cfg.NoColor),
		envBool(lookup, envDebug, &cfg.Debug),
	)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var err error
	if c.CurlBin == "" {
		err = multierr.Append(err, fmt.Errorf("curl_bin must not be empty"))
	}
	if c.BodyLimit < 0 {
		err = multierr.Append(err, fmt.Errorf("body_limit must not be negative, got %d", c.BodyLimit))
	}
	return err
}

func envBool(lookup LookupFunc, key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s '%v': expected a boolean", key, v)
	}
	*dst = b
	return nil
}

func envInt(lookup LookupFunc, key string, dst *int) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s '%v': expected an integer", key, v)
	}
	*dst = i
	return nil
}
