// Package config provides configuration loading and validation utilities.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration for the current APP_ENV from ./configs.
func Load() (*Config, *viper.Viper, error) {
	return LoadFrom("./configs")
}

// LoadFrom reads configuration from YAML files in dir and environment
// variables, validates it, and returns the resulting Config.
func LoadFrom(dir string) (*Config, *viper.Viper, error) {
	if err := godotenv.Load(".env.local", ".env"); err != nil {
		// missing env files are fine, real deployments use the environment
		_ = err
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	v := viper.New()
	v.SetConfigFile(fmt.Sprintf("%s/%s.yaml", dir, env))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.AppEnv = env

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, v, nil
}

// WatchLogLevel reloads the log level whenever the config file changes on disk.
func WatchLogLevel(v *viper.Viper, log *slog.Logger, setLevel func(string)) {
	if v == nil || setLevel == nil {
		return
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		newLevel := v.GetString("log_level")
		setLevel(newLevel)

		if log != nil {
			log.Info("config file changed, log level reloaded",
				slog.String("file", e.Name), slog.String("log_level", newLevel))
		}
	})
	v.WatchConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")

	v.SetDefault("bot.token", "")
	v.SetDefault("bot.timeout", 10*time.Second)

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("market.base_url", "https://api.aevo.xyz")
	v.SetDefault("market.timeout", 15*time.Second)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("intent.backend", "memory")
	v.SetDefault("intent.ttl", time.Duration(0))
	v.SetDefault("intent.clean_interval", 10*time.Minute)

	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")

	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
}
