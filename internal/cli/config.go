package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultConfigName is looked up in the user's home directory when no
// --config flag is given.
const defaultConfigName = ".dockhand.yaml"

// Config is what the optional config file can set. Flags override the file;
// the file overrides environment defaults.
type Config struct {
	Host       string
	APIVersion string
	Timeout    time.Duration
}

type fileConfig struct {
	Host       string `yaml:"host"`
	APIVersion string `yaml:"api_version"`
	Timeout    string `yaml:"timeout"`
}

// loadConfig reads the config file at path, or ~/.dockhand.yaml when path is
// empty. A missing file is not an error; a file that cannot be parsed is.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, defaultConfigName)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w\nCheck the YAML syntax", path, err)
	}

	cfg.Host = fc.Host
	cfg.APIVersion = fc.APIVersion
	if fc.Timeout != "" {
		timeout, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse timeout %q in %q: %w\nUse a Go duration like \"30s\"", fc.Timeout, path, err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}
