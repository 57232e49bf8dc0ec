// Package config reads runtime settings from the environment. A .env file in
// the working directory is loaded automatically.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// SMTP holds contact form delivery settings.
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// Addr returns host:port.
func (s SMTP) Addr() string {
	return s.Host + ":" + s.Port
}

type Config struct {
	Port   string
	DBPath string
	SMTP   SMTP

	AdminUsername string
	AdminPassword string

	HeroTypeInterval time.Duration
	HeroHold         time.Duration
	ContentFile      string
}

// Load reads the environment, falling back to development defaults.
func Load() Config {
	cfg := Config{
		Port:   getenv("PORT", "8080"),
		DBPath: getenv("DB_PATH", "portfolio.db"),
		SMTP: SMTP{
			Host: getenv("SMTP_HOST", "smtp.gmail.com"),
			Port: getenv("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   getenv("TO_EMAIL", "hello@example.com"),
		},
		AdminUsername:    os.Getenv("ADMIN_USERNAME"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		HeroTypeInterval: getenvMillis("HERO_TYPE_MS", 100, 1),
		HeroHold:         getenvMillis("HERO_HOLD_MS", 1000, 0),
		ContentFile:      os.Getenv("CONTENT_FILE"),
	}

	// Default credentials for development (set both in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getenvMillis reads a millisecond count no smaller than least.
func getenvMillis(key string, fallback, least int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Millisecond
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < least {
		log.Printf("Ignoring invalid %s=%q, using %dms", key, v, fallback)
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
