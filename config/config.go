package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Values are read
// from the environment, with a .env file loaded first when present.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Port        string `env:"APP_PORT" envDefault:"8080"`

	MongoURI    string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDBName string `env:"MONGODB_DBNAME" envDefault:"muebleria"`

	// Session state lives server-side in its own collection; the cookie
	// only carries the opaque session id.
	SessionCollection string        `env:"SESSION_COLLECTION" envDefault:"sesiones"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"8h"`

	// Directories backing the static mounts /qr-images and /images.
	QRDir     string `env:"QR_DIR" envDefault:"./Qr"`
	ImagesDir string `env:"IMAGES_DIR" envDefault:"./Images"`

	// When enabled, administrator usernames and emails get unique
	// indexes, matching the guarantee suppliers already have.
	AdminUniqueCredentials bool `env:"ADMIN_UNIQUE_CREDENTIALS" envDefault:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists. It's okay if it doesn't in production.
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}
