// Package config loads the Breeze account settings used by the CLI.
//
// Sources, lowest to highest precedence: built-in defaults, a YAML config
// file at $XDG_CONFIG_HOME/breezediff/config.yml, and BREEZE_* environment
// variables (a .env file in the working directory is honored).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the account credentials and local paths. The YAML keys match
// the breeze_maker.yml names the original tooling used.
type Config struct {
	BreezeURL   string `yaml:"breeze_url"`
	APIKey      string `yaml:"api_key"`
	SnapshotDir string `yaml:"snapshot_dir"`
}

func defaults() Config {
	return Config{
		SnapshotDir: defaultSnapshotDir(),
	}
}

func defaultSnapshotDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "breezediff", "snapshots")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "snapshots"
	}
	return filepath.Join(home, ".local", "share", "breezediff", "snapshots")
}

func configPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "breezediff", "config.yml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "breezediff", "config.yml")
}

// Load reads configuration from the config file and environment.
func Load() (Config, error) {
	// Ignore a missing .env; it is optional.
	_ = godotenv.Load()
	return loadWith(configPath(), os.Getenv)
}

func loadWith(path string, getenv func(string) string) (Config, error) {
	cfg := defaults()

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if v := getenv("BREEZE_URL"); v != "" {
		cfg.BreezeURL = v
	}
	if v := getenv("BREEZE_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := getenv("BREEZEDIFF_SNAPSHOT_DIR"); v != "" {
		cfg.SnapshotDir = v
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Credentials returns the account URL and API key, or an error telling the
// user how to supply whichever is missing. Commands that only operate on
// local snapshot files never call this.
func (c Config) Credentials() (breezeURL, apiKey string, err error) {
	if c.BreezeURL == "" {
		return "", "", errors.New("missing Breeze URL: set breeze_url in the config file or the BREEZE_URL environment variable")
	}
	if c.APIKey == "" {
		return "", "", errors.New("missing API key: set api_key in the config file or the BREEZE_API_KEY environment variable")
	}
	return c.BreezeURL, c.APIKey, nil
}
