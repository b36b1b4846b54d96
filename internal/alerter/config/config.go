package config

import (
	"stock-alert-engine/pkg/config"
)

// Config holds the full configuration for the alert service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	Scraper  config.Scraper  `mapstructure:"scraper"`
	Discord  config.Discord  `mapstructure:"discord"`
	Telegram config.Telegram `mapstructure:"telegram"`
	Market   config.Market   `mapstructure:"market"`
	Alert    config.Alert    `mapstructure:"alert"`
}

// Load loads the alert service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
