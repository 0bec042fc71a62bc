package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all process configuration, read from the environment
// (optionally seeded from a .env file).
type Config struct {
	Addr         string `env:"ADDR" env-default:":4000"`
	DatabasePath string `env:"DATABASE_PATH" env-default:"notedrop.db"`
	// TokenSecret signs session tokens. It has no default: tokens minted
	// with it are valid indefinitely, so it must come from the deployment.
	TokenSecret string `env:"TOKEN_SECRET"`
	BcryptCost  int    `env:"BCRYPT_COST" env-default:"10"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	LogPretty   bool   `env:"LOG_PRETTY" env-default:"false"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET is required")
	}

	return cfg, nil
}
