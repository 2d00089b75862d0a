package config

import (
	"time"

	"github.com/validatedpatterns/reference-api/src/internal/log"
)

type Config struct {
	// General holds process-wide settings.
	General GeneralConfig `toml:"general" json:"general"`
	// Server holds HTTP listener settings.
	Server ServerConfig `toml:"server" json:"server"`
	// Store holds in-memory store settings.
	Store StoreConfig `toml:"store" json:"store"`
	// Log holds logging settings.
	Log LogConfig `toml:"log" json:"log"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// Verbose enables debug logging (same as the -verbose flag).
	Verbose bool `toml:"verbose" json:"verbose"`
}

type ServerConfig struct {
	// ListenAddr is the host:port the HTTP API binds to (default: 0.0.0.0:8080).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" validate:"required,hostport"`
	// ReadTimeoutSeconds limits reading a whole request (default: 15).
	ReadTimeoutSeconds int `toml:"read_timeout_seconds" json:"read_timeout_seconds" validate:"min=1,max=3600"`
	// WriteTimeoutSeconds limits writing a response (default: 15).
	WriteTimeoutSeconds int `toml:"write_timeout_seconds" json:"write_timeout_seconds" validate:"min=1,max=3600"`
	// IdleTimeoutSeconds limits keep-alive idle time (default: 60).
	IdleTimeoutSeconds int `toml:"idle_timeout_seconds" json:"idle_timeout_seconds" validate:"min=1,max=3600"`
	// ShutdownTimeoutSeconds bounds graceful shutdown (default: 30).
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds" json:"shutdown_timeout_seconds" validate:"min=1,max=3600"`
	// CORSAllowedOrigin is sent as Access-Control-Allow-Origin (default: "*").
	CORSAllowedOrigin string `toml:"cors_allowed_origin" json:"cors_allowed_origin" validate:"required"`
}

type StoreConfig struct {
	// Seed loads the two sample records on startup (default: true).
	Seed bool `toml:"seed" json:"seed"`
}

type LogConfig struct {
	// AccessLogFormat is the per-request log line. Available variables: {method}, {path}, {status}, {duration}, {remote}.
	AccessLogFormat string `toml:"access_log_format" json:"access_log_format" validate:"required,access_log_format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:             "0.0.0.0:8080",
			ReadTimeoutSeconds:     15,
			WriteTimeoutSeconds:    15,
			IdleTimeoutSeconds:     60,
			ShutdownTimeoutSeconds: 30,
			CORSAllowedOrigin:      "*",
		},
		Store: StoreConfig{
			Seed: true,
		},
		Log: LogConfig{
			AccessLogFormat: log.DefaultAccessFormat,
		},
	}
}

// GetConfigPath returns the absolute path the config was loaded from, or ""
// for built-in defaults.
func (c *Config) GetConfigPath() string {
	return c._absConfigFilePath
}

func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSeconds) * time.Second
}

func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}
