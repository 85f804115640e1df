package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything the server needs from the environment or an
// optional config.yaml next to the binary. Environment variables win
// over file values (SERVER_ADDR, DATABASE_URL, REDIS_ADDR, JWT_SECRET).
type Config struct {
	ServerAddr  string `mapstructure:"server_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	RedisAddr   string `mapstructure:"redis_addr"`
	JWTSecret   string `mapstructure:"jwt_secret"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database_url (DATABASE_URL) is required")
	}
	return cfg, nil
}
