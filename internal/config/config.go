// Package config resolves application configuration from the process
// environment. Values are read once at startup and passed around explicitly;
// nothing in this package holds global state.
package config

import (
	"fmt"
	"net/url"
	"os"
)

const (
	// DefaultPort is the HTTP port used when PORT is unset or empty.
	DefaultPort = "5001"

	defaultDBHost     = "localhost"
	defaultDBPort     = "5432"
	defaultDBUser     = "postgres"
	defaultDBPassword = "postgres"
	defaultDBName     = "movie_tracker_db"
	defaultDBSSLMode  = "disable"
)

// Config holds the resolved runtime configuration.
type Config struct {
	Port        string
	DatabaseURL string
}

// Load reads configuration from the environment. PORT falls back to
// DefaultPort; the database URL comes from DATABASE_URL when set, otherwise
// it is composed from the discrete DB_* variables.
func Load() Config {
	return Config{
		Port:        getenv("PORT", DefaultPort),
		DatabaseURL: databaseURL(),
	}
}

func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getenv("DB_USER", defaultDBUser), getenv("DB_PASSWORD", defaultDBPassword)),
		Host:   fmt.Sprintf("%s:%s", getenv("DB_HOST", defaultDBHost), getenv("DB_PORT", defaultDBPort)),
		Path:   "/" + getenv("DB_NAME", defaultDBName),
	}

	q := url.Values{}
	q.Set("sslmode", getenv("DB_SSLMODE", defaultDBSSLMode))
	u.RawQuery = q.Encode()

	return u.String()
}

// getenv returns the value of key, or fallback when key is unset or empty.
// An empty value is deliberately treated the same as an absent one.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
