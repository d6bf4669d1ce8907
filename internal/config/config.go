package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SlugConfig struct {
	// MaxAttempts bounds the allocator's probe loop per name.
	MaxAttempts int `yaml:"max_attempts"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Slug SlugConfig `yaml:"slug"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Slug.MaxAttempts == 0 {
		cfg.Slug.MaxAttempts = 1000
	}
	return &cfg
}
