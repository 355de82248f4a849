package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port         string `env:"PORT" envDefault:"8000"`
	BaseURL      string `env:"BASE_URL" envDefault:"http://localhost:8000"`
	MongoURI     string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"clothesshare"`

	JWTSecret string `env:"JWT_SECRET,required"`

	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	EmailSender    string `env:"EMAIL_SENDER" envDefault:"no-reply@clothesshare.com"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// GoogleConfigured reports whether federated sign-in can be offered.
func (c *Config) GoogleConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
