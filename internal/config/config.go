package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	RedisURL      string // optional; enables the health request marker
	JWTSecret     string
	AdminEmail    string // seed admin at startup when both are set
	AdminPassword string
}

// devJWTSecret lets the server boot without a .env during local development.
const devJWTSecret = "aimlink-properties-dev-secret"

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	secret := viper.GetString("JWT_SECRET")
	if secret == "" {
		if env == "production" {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		secret = devJWTSecret
	}

	return &Config{
		Env:           env,
		Port:          port,
		DatabaseURL:   viper.GetString("DATABASE_URL"),
		RedisURL:      viper.GetString("REDIS_URL"),
		JWTSecret:     secret,
		AdminEmail:    viper.GetString("ADMIN_EMAIL"),
		AdminPassword: viper.GetString("ADMIN_PASSWORD"),
	}, nil
}
