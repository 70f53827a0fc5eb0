package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DBDriver   string `env:"DB_DRIVER" env-default:"sqlite"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"join"`
	DBPassword string `env:"DB_PASSWORD" env-default:"join"`
	DBName     string `env:"DB_NAME" env-default:"join"`
	DBSSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"join.db"`
	ListenAddr string `env:"LISTEN_ADDR" env-default:":8080"`
	GinMode    string `env:"GIN_MODE" env-default:"debug"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}
