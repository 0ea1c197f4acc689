package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLeds       = 60
	DefaultFPS        = 60
	DefaultBrightness = 16
	DefaultSparking   = 120
	DefaultCooling    = 55
)

// Config is the boot-time wiring of the lamp. Nothing here persists at
// runtime; every boot re-reads compiled defaults or a file.
type Config struct {
	Leds       int   `yaml:"leds"`
	FPS        int   `yaml:"fps"`
	Reversed   bool  `yaml:"reversed"`
	Seed       int64 `yaml:"seed"`
	Brightness int   `yaml:"brightness"`
	Sparking   int   `yaml:"sparking"`
	Cooling    int   `yaml:"cooling"`
}

func DefaultConfig() *Config {
	return &Config{
		Leds:       DefaultLeds,
		FPS:        DefaultFPS,
		Brightness: DefaultBrightness,
		Sparking:   DefaultSparking,
		Cooling:    DefaultCooling,
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
	if err := cfg.Validate(); err != nil {
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

func (c *Config) Validate() error {
	if c.Leds < 3 {
		return fmt.Errorf("config: leds must be at least 3, got %d", c.Leds)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("config: fps must be in [1,240], got %d", c.FPS)
	}
	return nil
}
