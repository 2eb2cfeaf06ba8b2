package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config holds all configuration for the backend.
type Config struct {
	Port      string `validate:"required"` // HTTP port (default: 8080)
	MongoURL  string `validate:"required"` // MongoDB connection string
	MongoDB   string `validate:"required"` // Database name
	RedisURL  string `validate:"required"` // Redis connection string for the catalog cache
	JWTSecret string `validate:"required"` // JWT signing secret
}

// LoadConfig loads environment variables into a Config struct.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:      os.Getenv("PORT"),
		MongoURL:  os.Getenv("MONGO_URL"),
		MongoDB:   os.Getenv("MONGO_DB"),
		RedisURL:  os.Getenv("REDIS_URL"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoURL == "" {
		cfg.MongoURL = "mongodb://localhost:27017"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "ecommerce"
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = "redis://localhost:6379"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
