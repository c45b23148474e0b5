package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv() {
	for _, key := range []string{
		"RENDER_API_TOKEN", "RENDER_SERVICE_ID", "RENDER_API_URL",
		"ALLOWED_KEYS", "RENDER_TIMEOUT_SECONDS", "PORT",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg := Load()

	if cfg.BaseURL != "https://api.render.com" {
		t.Fatalf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.Port != "7070" {
		t.Fatalf("expected default port 7070, got %q", cfg.Port)
	}
	if cfg.AllowedKeys != nil {
		t.Fatalf("expected nil AllowedKeys when unset, got %v", cfg.AllowedKeys)
	}
	if cfg.Configured() {
		t.Fatal("expected Configured()=false with no credentials")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv()
	t.Setenv("RENDER_API_TOKEN", "rnd_tok")
	t.Setenv("RENDER_SERVICE_ID", "srv-abc123")
	t.Setenv("RENDER_API_URL", "https://render.example.test")
	t.Setenv("RENDER_TIMEOUT_SECONDS", "5")

	cfg := Load()

	if !cfg.Configured() {
		t.Fatal("expected Configured()=true")
	}
	if cfg.BaseURL != "https://render.example.test" {
		t.Fatalf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected timeout 5s, got %v", cfg.Timeout)
	}
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	clearEnv()
	t.Setenv("RENDER_TIMEOUT_SECONDS", "not-a-number")

	if cfg := Load(); cfg.Timeout != 30*time.Second {
		t.Fatalf("expected fallback timeout 30s, got %v", cfg.Timeout)
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"key1", 1},
		{"key1,key2", 2},
		{" key1 , , key2 ", 2},
	}

	for _, test := range tests {
		keys := parseKeys(test.raw)
		if len(keys) != test.want {
			t.Errorf("parseKeys(%q) = %v, expected %d keys", test.raw, keys, test.want)
		}
	}
}
