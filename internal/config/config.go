package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the optional operator-facing configuration. Every field has a
// default; a missing file is not an error, a malformed one is.
type Config struct {
	DataDir string `yaml:"data_dir"`
	DBFile  string `yaml:"db_file"`
	LogFile string `yaml:"log_file"`
	Theme   string `yaml:"theme"`
}

func Default() Config {
	dataDir := ".quitlog"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".quitlog")
	}
	return Config{
		DataDir: dataDir,
		DBFile:  "quitlog.db",
		LogFile: "quitlog.log",
		Theme:   "dark",
	}
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(Default().DataDir, "config.yaml")
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Theme != "dark" && cfg.Theme != "light" {
		return cfg, fmt.Errorf("unknown theme %q (want dark or light)", cfg.Theme)
	}
	return cfg, nil
}

func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, c.LogFile)
}
