package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings resolved from the environment.
// Invitation TTL is deliberately explicit configuration rather than a
// per-call-site default.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`

	InviteTTLDays int `envconfig:"INVITE_TTL_DAYS" default:"7"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
