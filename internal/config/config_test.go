package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.ServerHost != "127.0.0.1" {
		t.Errorf("expected default host 127.0.0.1, got %q", cfg.ServerHost)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.ServerPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected default log level debug, got %q", cfg.LogLevel)
	}
	if cfg.Environment != Development {
		t.Errorf("expected development environment, got %q", cfg.Environment)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric SERVER_PORT")
	}
}

func TestLoad_ProductionEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/shop")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected IsProduction to be true")
	}
}
