package domain

import (
	"github.com/validatedpatterns/reference-api/src/internal/resource"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// It is built once at process startup and handed to the HTTP layer, so there is
// exactly one record store per process and no package-level state.
//
// Usage:
//
//	deps := domain.NewAppDependencies(domain.AppConfig{Seed: true})
//	router := api.NewRouter(deps, api.Options{})
type AppDependencies struct {
	recordStore RecordStore
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	// Seed loads resource.DefaultSeed into the store. When false the store
	// starts empty.
	Seed bool

	// IDGenerator overrides record id generation. Nil means random UUIDs.
	IDGenerator func() string
}

// NewAppDependencies creates a new dependency container with production implementations.
func NewAppDependencies(cfg AppConfig) *AppDependencies {
	var opts []resource.Option
	if !cfg.Seed {
		opts = append(opts, resource.WithSeed())
	}
	if cfg.IDGenerator != nil {
		opts = append(opts, resource.WithIDGenerator(cfg.IDGenerator))
	}

	return &AppDependencies{
		recordStore: resource.NewStore(opts...),
	}
}

// NewDefaultDependencies creates dependencies with the seeded store.
//
// This is equivalent to NewAppDependencies(AppConfig{Seed: true}).
func NewDefaultDependencies() *AppDependencies {
	return NewAppDependencies(AppConfig{Seed: true})
}

// NewTestDependencies creates a dependency container around the given store.
func NewTestDependencies(recordStore RecordStore) *AppDependencies {
	return &AppDependencies{
		recordStore: recordStore,
	}
}

// RecordStore returns the record repository.
func (d *AppDependencies) RecordStore() RecordStore {
	return d.recordStore
}
