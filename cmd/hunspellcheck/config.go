package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const defaultWorkers = 4

// Config is the TOML-loaded configuration for hunspellcheck, the batch
// front-end over package hunspore. Mirrors cmd/smoketest's two positional
// arguments (dictionary base path, directory) plus a worker-count knob,
// moved into a file so a deployment can pin search paths once instead of
// passing them on every invocation.
type Config struct {
	// DictPath is the dictionary base path, without the .aff/.dic
	// extension, e.g. "/usr/share/hunspell/en_US".
	DictPath string `toml:"dict_path"`
	// Dir is the directory of ".txt" files to scan.
	Dir string `toml:"dir"`
	// Workers caps concurrent file scans; defaults to 4 when unset.
	Workers int `toml:"workers"`
	// Debug switches the zap logger from production to development mode
	// (console encoding, debug level enabled).
	Debug bool `toml:"debug"`
}

// LoadConfig decodes a TOML config file and fills in defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.DictPath == "" {
		return Config{}, fmt.Errorf("config %s: dict_path is required", path)
	}
	if cfg.Dir == "" {
		return Config{}, fmt.Errorf("config %s: dir is required", path)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	return cfg, nil
}
