package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/phugoid/internal/flight"
)

const (
	DefaultZt     = 64.0
	DefaultZ0     = 16.0
	DefaultTheta0 = 0.0
)

type Config struct {
	Zt     float64 `yaml:"zt"`
	Z0     float64 `yaml:"z0"`
	Theta0 float64 `yaml:"theta0"`
	Steps  int     `yaml:"steps"`
	Ds     float64 `yaml:"ds"`
}

func DefaultConfig() *Config {
	return &Config{
		Zt:     DefaultZt,
		Z0:     DefaultZ0,
		Theta0: DefaultTheta0,
		Steps:  flight.DefaultSteps,
		Ds:     flight.DefaultDs,
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

// Params converts the configuration into trace parameters.
func (c *Config) Params() flight.Params {
	return flight.Params{
		Zt:     c.Zt,
		Z0:     c.Z0,
		Theta0: c.Theta0,
		Steps:  c.Steps,
		Ds:     c.Ds,
	}
}
