package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds all runtime configuration, parsed once at startup.
type Env struct {
	AppAddr string `env:"APP_ADDR" envDefault:":8080"`
	GinMode string `env:"GIN_MODE"`

	DBUser string `env:"DB_USER" envDefault:"root"`
	DBPass string `env:"DB_PASS"`
	DBHost string `env:"DB_HOST" envDefault:"127.0.0.1:3306"`
	DBName string `env:"DB_NAME" envDefault:"westudy"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"super-secret-key-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// SeedData loads the demo catalog on startup when the tables are empty.
	SeedData bool `env:"SEED_DATA" envDefault:"true"`

	AuthRatePerMinute    int `env:"AUTH_RATE_PER_MINUTE" envDefault:"10"`
	MessageRatePerMinute int `env:"MESSAGE_RATE_PER_MINUTE" envDefault:"60"`
}

func LoadEnv() Env {
	var e Env
	if err := env.Parse(&e); err != nil {
		log.Fatalf("falha ao carregar variaveis de ambiente: %v", err)
	}
	return e
}
