package app

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env       string `env:"ENV"        envDefault:"dev"`  // Environment (dev, staging, prod)
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"` // Log level (debug, info, warn, error)
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // Log format (json, text)
	Port      int    `env:"PORT"       envDefault:"8080"` // HTTP server port

	// DatabaseFile is the path to the sqlite database file.
	DatabaseFile string `env:"TASKHIVE_DATABASE_FILE" envDefault:"taskhive.db"`

	// TokenSecret is the shared HMAC signing key for bearer tokens. If
	// unset, an ephemeral secret is generated at startup and all issued
	// tokens become invalid on restart.
	TokenSecret string `env:"TASKHIVE_TOKEN_SECRET,unset"`

	// TokenIssuer is the iss claim stamped into every token.
	TokenIssuer string `env:"TASKHIVE_TOKEN_ISSUER" envDefault:"taskhive"`

	// TokenTTL bounds how long an issued token stays valid.
	TokenTTL time.Duration `env:"TASKHIVE_TOKEN_TTL" envDefault:"1h"`

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// generateSecret returns a random base64url secret for ephemeral signing.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
