// Package config reads server configuration from the environment.
package config

import "os"

// Config holds the server's startup configuration.
type Config struct {
	// Addr is the listen address, built from PORT.
	Addr string
	// ClientURL is the origin allowed to make cross-origin requests.
	ClientURL string
	// DatabaseURL selects the store backend: a SQLite file path (default),
	// a redis:// URL, or "mem:" for the in-memory store.
	DatabaseURL string
}

// Load reads configuration from environment variables, applying defaults.
func Load() Config {
	return Config{
		Addr:        ":" + getenv("PORT", "3000"),
		ClientURL:   getenv("CLIENT_URL", "http://localhost:5173"),
		DatabaseURL: getenv("DATABASE_URL", "wishlist.sqlite3"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
