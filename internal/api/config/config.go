package config

import (
	"stock-alert-engine/pkg/config"
)

// Config holds the full configuration for the API service.
type Config struct {
	App     config.App     `mapstructure:"app"`
	Logger  config.Logger  `mapstructure:"logger"`
	API     config.API     `mapstructure:"api"`
	Scraper config.Scraper `mapstructure:"scraper"`
}

// Load loads the API service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
