package commands

import (
	"fmt"

	"github.com/validatedpatterns/reference-api/src/internal/config"
	"github.com/validatedpatterns/reference-api/src/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// loadAndValidateConfigOrFail loads configuration from file (or defaults when
// the path is empty) and validates it.
func loadAndValidateConfigOrFail(ctx *AppContext) (*config.Config, error) {
	cfg, err := config.LoadConfig(ctx.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.General.Verbose && !ctx.Verbose {
		ctx.Verbose = true
		log.SetVerbose(true)
	}

	return cfg, nil
}
