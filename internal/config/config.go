package config

import (
	"os"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string
	RedisAddr   string

	JWTIssuer       string
	JWTAccessSecret string

	// Client-side collaborator endpoint: the storefront session talks to the
	// catalog API through these, never to the database directly.
	BackendURL    string
	BackendAPIKey string
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		DatabaseURL: get("DATABASE_URL", ""),
		RedisAddr:   get("REDIS_ADDR", "localhost:6379"),

		JWTIssuer:       get("JWT_ISSUER", "katalog"),
		JWTAccessSecret: get("JWT_ACCESS_SECRET", ""),

		BackendURL:    get("BACKEND_URL", "http://localhost:8080"),
		BackendAPIKey: get("BACKEND_API_KEY", ""),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
