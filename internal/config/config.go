package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"royaume"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// URL du Directus qui héberge le contenu éditorial (level_thresholds, ...)
	DirectusURL string `env:"DIRECTUS_URL" envDefault:"https://paraiges-directus.neodelta.dev"`

	// Origines autorisées pour le client mobile/web
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoadConfig charge le .env s'il existe puis parse les variables d'environnement
func LoadConfig() (*Config, error) {
	// Le .env est optionnel, on continue sans
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}

	return &cfg, nil
}
