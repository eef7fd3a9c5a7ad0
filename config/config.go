package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP API listens on
		Port string `env:"PORT" envDefault:"5250"`

		// Gin mode: debug, release or test
		Mode string `env:"GIN_MODE" envDefault:"release"`

		// Origins allowed to call the API from a browser
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

		// Grace period for in-flight requests on shutdown
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	}

	Log struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}

	// Calculator defaults
	Calculator struct {
		// Monthly salary used when a request does not carry one
		DefaultSalary float64 `env:"DEFAULT_SALARY" envDefault:"60000"`
	}

	Dataset struct {
		// Optional JSON file replacing the built-in city table
		Path string `env:"CITY_DATASET_PATH"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads variables from .env files when they exist. Variables
// already present in the environment are not overridden.
func LoadEnvFile(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
