package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/validatedpatterns/reference-api/src/internal/api"
	"github.com/validatedpatterns/reference-api/src/internal/config"
	"github.com/validatedpatterns/reference-api/src/internal/domain"
	"github.com/validatedpatterns/reference-api/src/internal/log"
)

// ServeCommand runs the HTTP API until SIGINT or SIGTERM.
type ServeCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	cfg  *config.Config
	deps *domain.AppDependencies

	bindAddr string

	server *api.Server
}

// CreateServeCommand creates a new serve command.
func CreateServeCommand() *ServeCommand {
	c := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ContinueOnError),
	}

	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server, overrides server.listen_addr (e.g., 0.0.0.0:8080)")

	return c
}

// Name returns the command name.
func (c *ServeCommand) Name() string {
	return c.fs.Name()
}

// Init parses flags, loads configuration and builds the dependencies.
func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	if c.bindAddr != "" {
		log.Debugf("Overriding listen address with -bind %s", c.bindAddr)
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	if c.bindAddr != "" {
		cfg.Server.ListenAddr = c.bindAddr
		if err := cfg.ValidateConfig(); err != nil {
			return fmt.Errorf("invalid -bind address: %w", err)
		}
	}
	c.cfg = cfg

	accessLog, err := log.NewAccessFormatter(cfg.Log.AccessLogFormat)
	if err != nil {
		return err
	}

	// The store is created exactly once here and shared by every request.
	c.deps = domain.NewAppDependencies(domain.AppConfig{Seed: cfg.Store.Seed})

	router := api.NewRouter(c.deps, api.Options{
		CORSAllowedOrigin: cfg.Server.CORSAllowedOrigin,
		AccessLog:         accessLog,
	})
	c.server = api.NewServer(router, cfg.Server)

	return nil
}

// Run starts the server and blocks until a shutdown signal arrives.
func (c *ServeCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.serve(ctx)
}

func (c *ServeCommand) serve(ctx context.Context) error {
	if path := c.cfg.GetConfigPath(); path != "" {
		log.Infof("Configuration loaded from: %s", path)
	} else {
		log.Infof("Using built-in default configuration")
	}
	log.Infof("Store seeded: %v, records: %d", c.cfg.Store.Seed, len(c.deps.RecordStore().List()))

	apiRunner := NewRestartableRunner(RunnerConfig{
		Name:           "API server",
		MaxRestarts:    5,
		RestartBackoff: 2 * time.Second,
		MaxBackoff:     30 * time.Second,
		StopTimeout:    c.cfg.Server.ShutdownTimeout(),
	}, func(context.Context) error {
		return c.server.Start()
	})

	if err := apiRunner.Start(ctx); err != nil {
		return err
	}

	select {
	case <-apiRunner.Done():
		if err := apiRunner.LastError(); err != nil {
			return fmt.Errorf("API server stopped: %w", err)
		}
		return nil

	case <-ctx.Done():
		log.Infof("Shutdown requested, stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := c.server.Stop(shutdownCtx); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
		apiRunner.Stop()
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := apiRunner.Stop(); err != nil {
		return err
	}

	log.Infof("Server stopped gracefully")
	return nil
}
