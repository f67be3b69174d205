package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func noEnv(string) string { return "" }

func TestLoadWith_File(t *testing.T) {
	path := writeConfig(t, `
breeze_url: https://demo.breezechms.com
api_key: file-key
snapshot_dir: /var/lib/breezediff
`)

	cfg, err := loadWith(path, noEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BreezeURL != "https://demo.breezechms.com" {
		t.Errorf("BreezeURL = %q", cfg.BreezeURL)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.SnapshotDir != "/var/lib/breezediff" {
		t.Errorf("SnapshotDir = %q", cfg.SnapshotDir)
	}
}

func TestLoadWith_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
breeze_url: https://demo.breezechms.com
api_key: file-key
`)
	env := map[string]string{
		"BREEZE_API_KEY":          "env-key",
		"BREEZEDIFF_SNAPSHOT_DIR": "/tmp/snaps",
	}

	cfg, err := loadWith(path, func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BreezeURL != "https://demo.breezechms.com" {
		t.Errorf("BreezeURL = %q, file value should survive", cfg.BreezeURL)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, env should win", cfg.APIKey)
	}
	if cfg.SnapshotDir != "/tmp/snaps" {
		t.Errorf("SnapshotDir = %q", cfg.SnapshotDir)
	}
}

func TestLoadWith_MissingFileIsFine(t *testing.T) {
	cfg, err := loadWith(filepath.Join(t.TempDir(), "missing.yml"), noEnv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SnapshotDir == "" {
		t.Error("default snapshot dir not applied")
	}
}

func TestLoadWith_MalformedFile(t *testing.T) {
	path := writeConfig(t, "breeze_url: [unbalanced")
	if _, err := loadWith(path, noEnv); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestCredentials(t *testing.T) {
	full := Config{BreezeURL: "https://demo.breezechms.com", APIKey: "k"}
	if _, _, err := full.Credentials(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if _, _, err := (Config{APIKey: "k"}).Credentials(); err == nil {
		t.Error("missing URL not reported")
	}
	if _, _, err := (Config{BreezeURL: "https://demo.breezechms.com"}).Credentials(); err == nil {
		t.Error("missing API key not reported")
	}
}
