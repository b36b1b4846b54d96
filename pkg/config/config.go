package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Database holds database configuration.
type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
}

// Redis holds Redis configuration.
type Redis struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Scraper holds configuration for the stock data source.
type Scraper struct {
	BaseURL             string `mapstructure:"base_url"`
	SearchPath          string `mapstructure:"search_path"`
	RequestTimeout      string `mapstructure:"request_timeout"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	UserAgent           string `mapstructure:"user_agent"`
}

// Discord holds Discord webhook configuration.
type Discord struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

// Telegram holds Telegram bot configuration.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Market holds market-hours gate configuration.
type Market struct {
	TimeZone    string `mapstructure:"time_zone"`
	OpenHour    int    `mapstructure:"open_hour"`
	OpenMinute  int    `mapstructure:"open_minute"`
	CloseHour   int    `mapstructure:"close_hour"`
	CloseMinute int    `mapstructure:"close_minute"`
}

// Alert holds alert cycle configuration.
type Alert struct {
	Schedule            string `mapstructure:"schedule"`
	RunLockDuration     string `mapstructure:"run_lock_duration"`
	ResendCacheDuration string `mapstructure:"resend_cache_duration"`
}

// Load loads configuration from a file into the given config struct.
func Load(path string, config interface{}) error {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Failed to read config file, falling back to environment variables")
	}

	return viper.Unmarshal(config)
}
