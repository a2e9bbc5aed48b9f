package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Discord Bot
	DiscordToken string

	// Discord OAuth2
	DiscordClientID     string
	DiscordClientSecret string
	DiscordRedirectURI  string

	// Database
	DatabaseURL string

	// Web Server
	WebBind      string
	WebUIBaseURL string

	// Session
	JWTSecret string

	// Ledger policy: pool balances between DeficitThreshold and
	// SurplusThreshold are shown as final status; above SurplusThreshold
	// the settlement choice is offered, below DeficitThreshold a
	// data-entry warning is attached.
	SurplusThreshold float64
	DeficitThreshold float64
}

func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	surplus, err := getEnvFloat("SURPLUS_THRESHOLD", 1)
	if err != nil {
		return nil, err
	}
	deficit, err := getEnvFloat("DEFICIT_THRESHOLD", -1)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DiscordToken:        os.Getenv("DISCORD_TOKEN"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		WebBind:             getEnvDefault("WEB_BIND", "0.0.0.0:3000"),
		DiscordClientID:     os.Getenv("DISCORD_CLIENT_ID"),
		DiscordClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
		DiscordRedirectURI:  getEnvDefault("DISCORD_REDIRECT_URI", "http://localhost:3000/api/auth/callback"),
		JWTSecret:           getEnvDefault("JWT_SECRET", "dev-only-change-me"),
		SurplusThreshold:    surplus,
		DeficitThreshold:    deficit,
	}

	// Extract base URL from redirect URI
	cfg.WebUIBaseURL = extractBaseURL(cfg.DiscordRedirectURI)

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.SurplusThreshold <= cfg.DeficitThreshold {
		return nil, fmt.Errorf("SURPLUS_THRESHOLD must be greater than DEFICIT_THRESHOLD")
	}

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}

func extractBaseURL(redirectURI string) string {
	// e.g. "http://localhost:3000/api/auth/callback" -> "http://localhost:3000"
	parsed, err := url.Parse(redirectURI)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "http://localhost:3000"
	}

	return fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
}
