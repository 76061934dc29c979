package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/ecomload/pkg/ecomload"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables read by the CLI. They override the config file.
const (
	EnvDataDir = "ECOMLOAD_DATA_DIR"
	EnvDBPath  = "ECOMLOAD_DB_PATH"
)

// SourceConfig pairs a CSV file with its table.
type SourceConfig struct {
	File  string `yaml:"file"`
	Table string `yaml:"table"`
}

type ProjectConfig struct {
	DataDir   string         `yaml:"data_dir"`
	DBPath    string         `yaml:"db_path"`
	BatchSize int            `yaml:"batch_size,omitempty"`
	Sources   []SourceConfig `yaml:"sources,omitempty"`
}

const ConfigFileName = "ecomload.yaml"

// Load reads ecomload.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads the config file at path.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ecomload.ErrInvalidConfig, path, err)
	}
	return &cfg, nil
}

// ApplyTo copies every field set in the file onto cfg.
func (p *ProjectConfig) ApplyTo(cfg *ecomload.Config) {
	if p == nil {
		return
	}
	if p.DataDir != "" {
		cfg.DataDir = p.DataDir
	}
	if p.DBPath != "" {
		cfg.DBPath = p.DBPath
	}
	if p.BatchSize != 0 {
		cfg.BatchSize = p.BatchSize
	}
	if len(p.Sources) > 0 {
		cfg.Sources = make([]ecomload.Source, len(p.Sources))
		for i, src := range p.Sources {
			cfg.Sources[i] = ecomload.Source{File: src.File, Table: src.Table}
		}
	}
}

// ApplyEnv overrides cfg from EnvDataDir and EnvDBPath when they are set.
func ApplyEnv(cfg *ecomload.Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		cfg.DataDir = v
	}
	if v, ok := lookup(EnvDBPath); ok && v != "" {
		cfg.DBPath = v
	}
}
