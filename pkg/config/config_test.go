package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
	if cfg.Classifier.Alpha != 1.0 {
		t.Errorf("default alpha = %g, expected 1.0", cfg.Classifier.Alpha)
	}
	if cfg.Split.TrainRatio != 0.8 {
		t.Errorf("default train_ratio = %g, expected 0.8", cfg.Split.TrainRatio)
	}
	if cfg.Model.Backend != "file" {
		t.Errorf("default backend = %s, expected file", cfg.Model.Backend)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Tuning.AlphaStep != 0.05 {
		t.Errorf("alpha_step = %g, expected default 0.05", cfg.Tuning.AlphaStep)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Corpus.Path = "/data/sms.tsv"
	cfg.Split.Seed = 7
	cfg.Model.Backend = "sqlite"

	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Corpus.Path != "/data/sms.tsv" {
		t.Errorf("corpus path = %s, expected /data/sms.tsv", loaded.Corpus.Path)
	}
	if loaded.Split.Seed != 7 {
		t.Errorf("seed = %d, expected 7", loaded.Split.Seed)
	}
	if loaded.Model.Backend != "sqlite" {
		t.Errorf("backend = %s, expected sqlite", loaded.Model.Backend)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "classifier:\n  alpha: 0.25\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Classifier.Alpha != 0.25 {
		t.Errorf("alpha = %g, expected 0.25 from file", cfg.Classifier.Alpha)
	}
	if cfg.Split.TrainRatio != 0.8 {
		t.Errorf("train_ratio = %g, expected default 0.8", cfg.Split.TrainRatio)
	}
}

func TestValidateErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ratios not summing to 1", func(c *Config) { c.Split.TestRatio = 0.5 }},
		{"zero train ratio", func(c *Config) { c.Split.TrainRatio = 0 }},
		{"negative alpha", func(c *Config) { c.Classifier.Alpha = -1 }},
		{"zero tuning minimum", func(c *Config) { c.Tuning.AlphaMin = 0 }},
		{"zero tuning step", func(c *Config) { c.Tuning.AlphaStep = 0 }},
		{"max below min", func(c *Config) { c.Tuning.AlphaMax = 0.01 }},
		{"unknown backend", func(c *Config) { c.Model.Backend = "carrier-pigeon" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got none")
			}
		})
	}
}
