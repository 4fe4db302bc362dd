package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the full classifier pipeline configuration.
type Config struct {
	// Corpus input settings
	Corpus CorpusConfig `yaml:"corpus"`

	// Train/validation/test partition settings
	Split SplitConfig `yaml:"split"`

	// Classification settings
	Classifier ClassifierConfig `yaml:"classifier"`

	// Smoothing-constant tuning settings
	Tuning TuningConfig `yaml:"tuning"`

	// Trained model storage settings
	Model ModelConfig `yaml:"model"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig locates the labeled message corpus.
type CorpusConfig struct {
	// Path to a tab-delimited corpus file (label<TAB>text per line)
	Path string `yaml:"path"`
}

// SplitConfig controls the randomized corpus partition.
type SplitConfig struct {
	TrainRatio      float64 `yaml:"train_ratio"`
	ValidationRatio float64 `yaml:"validation_ratio"`
	TestRatio       float64 `yaml:"test_ratio"`

	// Seed makes the partition reproducible
	Seed int64 `yaml:"seed"`
}

// ClassifierConfig contains scoring parameters.
type ClassifierConfig struct {
	// Laplace smoothing constant. Zero is accepted but unsmoothed:
	// any zero-count word then zeroes its class score.
	Alpha float64 `yaml:"alpha"`
}

// TuningConfig defines the smoothing-constant candidate grid.
type TuningConfig struct {
	AlphaMin  float64 `yaml:"alpha_min"`
	AlphaMax  float64 `yaml:"alpha_max"`
	AlphaStep float64 `yaml:"alpha_step"`
}

// ModelConfig selects where trained artifacts are persisted.
type ModelConfig struct {
	// Backend selection: "file", "sqlite" or "redis"
	Backend string `yaml:"backend"`

	// File-based backend settings
	Path string `yaml:"path"`

	// SQLite backend settings
	SQLite SQLiteBackendConfig `yaml:"sqlite"`

	// Redis backend settings
	Redis RedisBackendConfig `yaml:"redis"`
}

// SQLiteBackendConfig contains SQLite store settings.
type SQLiteBackendConfig struct {
	Path string `yaml:"path"`
}

// RedisBackendConfig contains Redis store settings.
type RedisBackendConfig struct {
	RedisURL    string `yaml:"redis_url"`
	KeyPrefix   string `yaml:"key_prefix"`
	DatabaseNum int    `yaml:"database_num"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path: "corpus.tsv",
		},
		Split: SplitConfig{
			TrainRatio:      0.8,
			ValidationRatio: 0.1,
			TestRatio:       0.1,
			Seed:            42,
		},
		Classifier: ClassifierConfig{
			Alpha: 1.0,
		},
		Tuning: TuningConfig{
			AlphaMin:  0.05,
			AlphaMax:  1.0,
			AlphaStep: 0.05,
		},
		Model: ModelConfig{
			Backend: "file",
			Path:    "model.json",
			SQLite: SQLiteBackendConfig{
				Path: "model.db",
			},
			Redis: RedisBackendConfig{
				RedisURL:    "redis://localhost:6379",
				KeyPrefix:   "smsfilter:model",
				DatabaseNum: 0,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from file, starting from defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}

	return config, nil
}

// SaveConfig saves configuration to file.
func (c *Config) SaveConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Split.TrainRatio <= 0 {
		return fmt.Errorf("train_ratio must be > 0")
	}
	if c.Split.ValidationRatio < 0 || c.Split.TestRatio < 0 {
		return fmt.Errorf("validation_ratio and test_ratio must be >= 0")
	}
	sum := c.Split.TrainRatio + c.Split.ValidationRatio + c.Split.TestRatio
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("split ratios must sum to 1, got %g", sum)
	}

	if c.Classifier.Alpha < 0 {
		return fmt.Errorf("alpha must be >= 0")
	}

	if c.Tuning.AlphaMin <= 0 {
		return fmt.Errorf("tuning alpha_min must be > 0")
	}
	if c.Tuning.AlphaStep <= 0 {
		return fmt.Errorf("tuning alpha_step must be > 0")
	}
	if c.Tuning.AlphaMax < c.Tuning.AlphaMin {
		return fmt.Errorf("tuning alpha_max must be >= alpha_min")
	}

	switch c.Model.Backend {
	case "file", "sqlite", "redis":
	default:
		return fmt.Errorf("model backend must be 'file', 'sqlite' or 'redis'")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if c.Logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	return nil
}
