package main

import (
	"errors"
	"os"
	"time"

	"github.com/khoborhub/khobor/internal/auth"
)

type AppConfig struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
}

func LoadAppConfig() (*AppConfig, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	ttl := auth.DefaultTokenTTL
	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.New("TOKEN_TTL must be a valid duration, e.g. 24h")
		}
		ttl = parsed
	}

	return &AppConfig{
		DatabaseURL: dbURL,
		JWTSecret:   secret,
		TokenTTL:    ttl,
	}, nil
}
