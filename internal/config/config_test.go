package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEMINI_API_KEY", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("expected default gemini key empty, got %s", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModel)
	}
	if cfg.ChatTimeout != 15*time.Second {
		t.Fatalf("expected default chat timeout, got %s", cfg.ChatTimeout)
	}
	if cfg.StorageTimeout != 5*time.Second {
		t.Fatalf("expected default storage timeout, got %s", cfg.StorageTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("CHAT_TIMEOUT", "30s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://healthplus.example, https://widget.example")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("expected model override, got %s", cfg.GeminiModel)
	}
	if cfg.ChatTimeout != 30*time.Second {
		t.Fatalf("expected chat timeout override, got %s", cfg.ChatTimeout)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rate limit override, got %f", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 5 {
		t.Fatalf("expected burst override, got %d", cfg.RateLimitBurst)
	}
	want := []string{"https://healthplus.example", "https://widget.example"}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != want[0] || cfg.CORSAllowedOrigins[1] != want[1] {
		t.Fatalf("expected CORS override, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("CHAT_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")
	cfg := Load()
	if cfg.ChatTimeout != 15*time.Second {
		t.Fatalf("expected fallback chat timeout, got %s", cfg.ChatTimeout)
	}
	if cfg.RateLimitBurst != 30 {
		t.Fatalf("expected fallback burst, got %d", cfg.RateLimitBurst)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected fallback CORS, got %v", cfg.CORSAllowedOrigins)
	}
}
