package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("OBJECT_STORE", "")
	t.Setenv("ENV", "")
	t.Setenv("DATABASE_URL", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected local store, got %q", cfg.ObjectStoreType)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("ENV", "prod")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example , https://b.example,")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected 9090, got %q", cfg.Port)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("expected s3, got %q", cfg.ObjectStoreType)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production, got %q", cfg.Env)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORSAllowOrigin)
	}
}
