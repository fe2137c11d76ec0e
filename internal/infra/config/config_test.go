package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("JWT_PRIVATE_KEY_PATH", "priv.pem")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "pub.pem")
	t.Setenv("JWT_ISSUER", "authgate")
	t.Setenv("JWT_AUDIENCE", "authgate-clients")
	t.Setenv("ACCESS_TOKEN_TTL", "2m")
	t.Setenv("REFRESH_TOKEN_TTL", "72h")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("PASSWORD_PEPPER", "pepper")
}

func TestLoad_Success(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_ORIGINS", `["https://app.example.com"]`)
	t.Setenv("ALLOW_CREDENTIALS", "true")
	t.Setenv("COOKIE_DOMAIN", "example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AccessTokenTTL != 2*time.Minute {
		t.Fatalf("AccessTokenTTL want 2m, got %v", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 72*time.Hour {
		t.Fatalf("RefreshTokenTTL want 72h, got %v", cfg.RefreshTokenTTL)
	}
	if cfg.HTTPAddress != ":8080" {
		t.Fatalf("HTTPAddress default want :8080, got %s", cfg.HTTPAddress)
	}
	if !cfg.AllowCredentials {
		t.Fatal("AllowCredentials want true")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ISSUER", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error due to missing JWT_ISSUER, got nil")
	}
}

func TestLoad_AccessLongerThanRefresh(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_TTL", "100h")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for access TTL >= refresh TTL")
	}
}
