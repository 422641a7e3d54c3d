// Package config loads evaluation-run configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures the knobs for an offline evaluation run.
type Config struct {
	// BatchFile is a JSONL file of pre-fetched batches, one JSON object
	// per line mapping tensor names to value vectors.
	BatchFile string `yaml:"batch_file"`

	// Epochs is the number of validation passes over the batch file.
	Epochs int `yaml:"epochs"`

	// Scalars configures a ScalarStats inferencer.
	Scalars ScalarsConfig `yaml:"scalars"`

	// Error configures a ClassificationError inferencer.
	Error ErrorConfig `yaml:"error"`

	// Binary configures a BinaryClassificationStats inferencer.
	Binary BinaryConfig `yaml:"binary"`

	// StatsFile, when set, receives one JSON record per epoch.
	StatsFile string `yaml:"stats_file"`
}

// ScalarsConfig selects scalar tensors to average per epoch.
type ScalarsConfig struct {
	Names  []string `yaml:"names"`
	Prefix string   `yaml:"prefix"`
}

// ErrorConfig selects the per-sample "wrong" vector for the dataset-exact
// error rate.
type ErrorConfig struct {
	TensorName  string `yaml:"tensor_name"`
	SummaryName string `yaml:"summary_name"`
}

// BinaryConfig selects paired prediction/label vectors for precision and
// recall.
type BinaryConfig struct {
	PredName  string `yaml:"pred_name"`
	LabelName string `yaml:"label_name"`
	Prefix    string `yaml:"prefix"`
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{Epochs: 1}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions and omissions.
func (c *Config) Validate() error {
	if c.BatchFile == "" {
		return fmt.Errorf("config: batch_file is required")
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("config: epochs must be > 0, got %d", c.Epochs)
	}
	if len(c.Scalars.Names) == 0 && c.Error.TensorName == "" && c.Binary.PredName == "" {
		return fmt.Errorf("config: no inferencers configured")
	}
	if (c.Binary.PredName == "") != (c.Binary.LabelName == "") {
		return fmt.Errorf("config: binary needs both pred_name and label_name")
	}
	return nil
}
