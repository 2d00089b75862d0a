package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/validatedpatterns/reference-api/src/internal/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference-api.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Server.ListenAddr != "0.0.0.0:8080" {
		t.Errorf("Expected default listen address, got %q", cfg.Server.ListenAddr)
	}
	if !cfg.Store.Seed {
		t.Error("Expected seeding to be enabled by default")
	}
	if cfg.GetConfigPath() != "" {
		t.Errorf("Expected empty config path, got %q", cfg.GetConfigPath())
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected defaults to be valid, got: %v", err)
	}
}

func TestLoadConfig_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeConfigFile(t, `
[general]
verbose = true

[server]
listen_addr = "127.0.0.1:9090"
shutdown_timeout_seconds = 5

[store]
seed = false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !cfg.General.Verbose {
		t.Error("Expected verbose to be true")
	}
	if cfg.Server.ListenAddr != "127.0.0.1:9090" {
		t.Errorf("Expected overridden listen address, got %q", cfg.Server.ListenAddr)
	}
	if cfg.Server.ShutdownTimeout() != 5*time.Second {
		t.Errorf("Expected 5s shutdown timeout, got %v", cfg.Server.ShutdownTimeout())
	}
	if cfg.Server.ReadTimeout() != 15*time.Second {
		t.Errorf("Expected default read timeout to survive, got %v", cfg.Server.ReadTimeout())
	}
	if cfg.Store.Seed {
		t.Error("Expected seeding to be disabled")
	}
	if cfg.GetConfigPath() != path {
		t.Errorf("Expected config path %q, got %q", path, cfg.GetConfigPath())
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !apperrors.IsErrorCode(err, apperrors.ErrCodeConfig) {
		t.Errorf("Expected CONFIG_ERROR, got: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist cause, got: %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := writeConfigFile(t, "[server\nlisten_addr = 1")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !apperrors.IsErrorCode(err, apperrors.ErrCodeConfig) {
		t.Errorf("Expected CONFIG_ERROR, got: %v", err)
	}
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := writeConfigFile(t, "[server]\nlisten_port = 8080\n")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown keys") {
		t.Errorf("Expected unknown keys error, got: %v", err)
	}
}

func TestSerializeConfig_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.ListenAddr = ":7070"

	buf, err := cfg.SerializeConfig()
	if err != nil {
		t.Fatalf("SerializeConfig() error: %v", err)
	}
	if !strings.Contains(buf.String(), "listen_addr") || !strings.Contains(buf.String(), ":7070") {
		t.Errorf("Expected listen_addr in output, got:\n%s", buf.String())
	}

	loaded, err := LoadConfig(writeConfigFile(t, buf.String()))
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.Server != cfg.Server || loaded.Store != cfg.Store || loaded.Log != cfg.Log {
		t.Errorf("Round trip mismatch: got %+v, want %+v", loaded, cfg)
	}
}
