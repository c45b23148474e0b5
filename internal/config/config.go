package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all process configuration. It is built once at startup
// and treated as immutable for the life of the process.
type Config struct {
	// Render API credentials
	APIToken  string
	ServiceID string
	BaseURL   string

	// Optional comma-separated API keys for the X-API-KEY header.
	// Empty means no auth is enforced.
	AllowedKeys []string

	// Upstream HTTP timeout
	Timeout time.Duration

	Port string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		APIToken:    os.Getenv("RENDER_API_TOKEN"),
		ServiceID:   os.Getenv("RENDER_SERVICE_ID"),
		BaseURL:     getenv("RENDER_API_URL", "https://api.render.com"),
		AllowedKeys: parseKeys(os.Getenv("ALLOWED_KEYS")),
		Timeout:     getenvSeconds("RENDER_TIMEOUT_SECONDS", 30*time.Second),
		Port:        getenv("PORT", "7070"),
	}
}

// Configured reports whether the Render credentials needed for log
// retrieval are present.
func (c Config) Configured() bool {
	return c.APIToken != "" && c.ServiceID != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvSeconds(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func parseKeys(raw string) []string {
	if raw == "" {
		return nil
	}
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
