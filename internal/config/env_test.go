package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogDevelopment, "")
	t.Setenv(EnvPDFFont, "")

	env, loaded := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	if loaded {
		t.Error("Expected missing .env file to be reported as not loaded")
	}

	if env.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got %q", env.LogLevel)
	}
	if env.LogDevelopment {
		t.Error("Expected development logging to be off by default")
	}
	if env.PDFFontPath != "" {
		t.Errorf("Expected empty font path, got %q", env.PDFFontPath)
	}
}

func TestLoadEnv_FromEnvironment(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogDevelopment, "TRUE")
	t.Setenv(EnvPDFFont, "/fonts/NanumGothic.ttf")

	env, _ := LoadEnv(filepath.Join(t.TempDir(), "missing.env"))

	if env.LogLevel != "debug" {
		t.Errorf("Expected log level 'debug', got %q", env.LogLevel)
	}
	if !env.LogDevelopment {
		t.Error("Expected development logging to be on")
	}
	if env.PDFFontPath != "/fonts/NanumGothic.ttf" {
		t.Errorf("Unexpected font path %q", env.PDFFontPath)
	}
}

func TestLoadEnv_FromFile(t *testing.T) {
	// godotenv does not override variables that are already set
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvLogLevel)

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvLogLevel+"=warn\n"), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	env, loaded := LoadEnv(path)
	if !loaded {
		t.Fatal("Expected env file to be loaded")
	}
	if env.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn' from file, got %q", env.LogLevel)
	}
}
