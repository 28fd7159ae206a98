package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Keys understood in config files, LIFE_* environment variables and flags.
const (
	KeyBirthThreshold = "birth_threshold"
	KeyGrid           = "grid"
	KeyCellSize       = "cell_size"
	KeyInterval       = "interval"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "LIFE"

// File is the on-disk YAML layout.
type File struct {
	BirthThreshold int    `yaml:"birth_threshold"`
	Grid           string `yaml:"grid"`
	CellSize       int    `yaml:"cell_size"`
	Interval       string `yaml:"interval"`
}

// NewFile converts the settings into their on-disk form.
func NewFile(cfg Config, disp Display) File {
	return File{
		BirthThreshold: cfg.BirthThreshold(),
		Grid:           cfg.GridSize(),
		CellSize:       disp.CellSize,
		Interval:       disp.Interval.String(),
	}
}

// DefaultPath returns $HOME/.threshold-life/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".threshold-life", "config.yaml"), nil
}

// SetDefaults registers the default values and environment binding on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	disp := DefaultDisplay()
	v.SetDefault(KeyBirthThreshold, d.BirthThreshold())
	v.SetDefault(KeyGrid, d.GridSize())
	v.SetDefault(KeyCellSize, disp.CellSize)
	v.SetDefault(KeyInterval, disp.Interval.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads and validates the engine and driver settings from v. Invalid
// values are reported, never replaced by defaults.
func Load(v *viper.Viper) (Config, Display, error) {
	threshold, err := ValidateBirthThreshold(v.GetString(KeyBirthThreshold))
	if err != nil {
		return Config{}, Display{}, err
	}
	rows, cols, err := ValidateGridSize(v.GetString(KeyGrid))
	if err != nil {
		return Config{}, Display{}, err
	}
	cfg, err := New(threshold, rows, cols)
	if err != nil {
		return Config{}, Display{}, err
	}

	disp := DefaultDisplay()
	if raw := strings.TrimSpace(v.GetString(KeyCellSize)); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, Display{}, fmt.Errorf("invalid %s %q: %w", KeyCellSize, raw, err)
		}
		disp.CellSize = size
	}
	if raw := strings.TrimSpace(v.GetString(KeyInterval)); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, Display{}, fmt.Errorf("invalid %s %q: %w", KeyInterval, raw, err)
		}
		disp.Interval = interval
	}
	if err := disp.Validate(); err != nil {
		return Config{}, Display{}, err
	}
	return cfg, disp, nil
}

// Save writes cfg and disp to path as YAML, creating the directory if needed.
func Save(path string, cfg Config, disp Display) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(NewFile(cfg, disp))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
