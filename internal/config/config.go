// Package config loads run configuration from YAML and carries the
// built-in presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStepper  = "rk4"
	DefaultSubsteps = 10
)

type Config struct {
	Scenario string             `yaml:"scenario"`
	Stepper  string             `yaml:"stepper"`
	Substeps int                `yaml:"substeps"`
	Params   map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: "rabi",
		Stepper:  DefaultStepper,
		Substeps: DefaultSubsteps,
		Params:   map[string]float64{},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
