package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Environment is the service configuration, parsed from environment
// variables. A .env file is loaded beforehand in development (see main).
type Environment struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	DatabaseURL    string   `env:"DB_URL"`
	DatabasePath   string   `env:"DB_PATH" envDefault:"mindweave.db"`
	JWTSecret      string   `env:"JWT_SECRET_KEY"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	SuggestionURL  string   `env:"SUGGESTION_URL"`
}

// Load parses the environment into an Environment.
func Load() (Environment, error) {
	var environment Environment
	if err := env.Parse(&environment); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return environment, nil
}
