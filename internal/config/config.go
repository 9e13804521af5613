package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all service configuration, read from the environment.
type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	ImageHost ImageHostConfig
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DB" envDefault:"savanna_rentals"`
}

// ImageHostConfig configures the external image-hosting collaborator.
type ImageHostConfig struct {
	UploadURL    string `env:"IMAGE_UPLOAD_URL"`
	UploadPreset string `env:"IMAGE_UPLOAD_PRESET" envDefault:"unsigned"`
}

// ReadConfig loads .env (if present) and parses the environment into Config.
func ReadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
