package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hunspellcheck.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadConfigFillsDefaultWorkers(t *testing.T) {
	path := writeConfig(t, `dict_path = "/usr/share/hunspell/en_US"
dir = "/tmp/corpus"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Workers != defaultWorkers {
		t.Errorf("Workers = %d, want default %d", cfg.Workers, defaultWorkers)
	}
	if cfg.DictPath != "/usr/share/hunspell/en_US" {
		t.Errorf("DictPath = %q", cfg.DictPath)
	}
}

func TestLoadConfigRespectsExplicitWorkers(t *testing.T) {
	path := writeConfig(t, `dict_path = "/usr/share/hunspell/en_US"
dir = "/tmp/corpus"
workers = 8
debug = true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if !cfg.Debug {
		t.Error("expected Debug to be true")
	}
}

func TestLoadConfigRequiresDictPath(t *testing.T) {
	path := writeConfig(t, `dir = "/tmp/corpus"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for missing dict_path")
	}
}

func TestLoadConfigRequiresDir(t *testing.T) {
	path := writeConfig(t, `dict_path = "/usr/share/hunspell/en_US"
`)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for missing dir")
	}
}
