package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt    = 20.0
	DefaultTicks = 100
	DefaultTempo = 120.0
)

// Config describes one rhythm scenario: the initial body layout fed to the
// gravity simulator plus the musical material rendered over its offsets.
type Config struct {
	Positions []float64 `yaml:"positions"`
	Masses    []float64 `yaml:"masses"`
	Ticks     int       `yaml:"ticks"`
	Dt        float64   `yaml:"dt"`
	Chord     []uint8   `yaml:"chord"`
	Tempo     float64   `yaml:"tempo"`
}

func DefaultConfig() *Config {
	return &Config{
		Positions: []float64{0, 300, 900},
		Masses:    []float64{500000, 500000, 500000},
		Ticks:     DefaultTicks,
		Dt:        DefaultDt,
		Chord:     []uint8{60, 64, 67},
		Tempo:     DefaultTempo,
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
