package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Mongo.Database != "inventory" {
		t.Fatalf("expected default database, got %q", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("expected default redis addr, got %q", cfg.Redis.Addr)
	}
}

func TestLoad_MissingSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset in production")
	}
}

func TestLoad_SecretProvided(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.JWTSecret != "s3cret" || cfg.Port != "9090" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
