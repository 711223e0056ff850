package config

import (
	"github.com/spf13/viper"
)

// Config groups the application configuration, read via Viper from
// environment variables with an optional local .env file.
type Config struct {
	App  AppConfig
	DB   DBConfig
	HTTP HTTPConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	DSN string
}

// HTTPConfig holds the HTTP server settings.
type HTTPConfig struct {
	Port string // listen address, e.g. ":8000"
}

// Load reads the configuration from environment variables, falling back to
// defaults. Expected names: APP_ENV, APP_NAME, LOG_LEVEL, DATABASE_DSN,
// APP_PORT.
func Load() (*Config, error) {
	v := viper.New()

	// Optional .env file; env vars win either way.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "styleverse")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_PORT", ":8000")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=styleverse port=5432 sslmode=disable")

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			DSN: v.GetString("DATABASE_DSN"),
		},
		HTTP: HTTPConfig{
			Port: v.GetString("APP_PORT"),
		},
	}
	return cfg, nil
}
