package config

import "time"

// Config holds runtime configuration for the AEVO helper bot.
type Config struct {
	AppEnv   string `mapstructure:"-"`
	LogLevel string `mapstructure:"log_level"`

	Bot    BotConfig    `mapstructure:"bot" validate:"required"`
	Server ServerConfig `mapstructure:"server"`
	Market MarketConfig `mapstructure:"market" validate:"required"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Intent IntentConfig `mapstructure:"intent"`
	Sentry SentryConfig `mapstructure:"sentry"`
	Log    LogConfig    `mapstructure:"log"`
}

// BotConfig configures the Telegram transport.
type BotConfig struct {
	Token   string        `mapstructure:"token" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ServerConfig configures the ops HTTP server serving health and metrics.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// MarketConfig configures the market data API client.
type MarketConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RedisConfig configures the Redis connection used by the redis intent backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// IntentConfig selects the pending-intent store backend and its optional expiry.
// A zero TTL keeps abandoned intents forever, which is the default behavior.
type IntentConfig struct {
	Backend       string        `mapstructure:"backend" validate:"oneof=memory redis"`
	TTL           time.Duration `mapstructure:"ttl"`
	CleanInterval time.Duration `mapstructure:"clean_interval"`
}

// SentryConfig configures error reporting.
type SentryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DSN     string `mapstructure:"dsn"`
}

// LogConfig configures log file rotation.
type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}
