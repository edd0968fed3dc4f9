// Package container provides dependency injection for the departure planner.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"studyabroad/departure-planner/internal/benchmark"
	"studyabroad/departure-planner/internal/config"
	"studyabroad/departure-planner/internal/currencyutils"
	"studyabroad/departure-planner/internal/fileutils"
	"studyabroad/departure-planner/internal/logging"
	"studyabroad/departure-planner/internal/planner"
	"studyabroad/departure-planner/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; dependencies are reached through
// getter methods.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	backend store.Backend
	store   *store.PlanStore
	catalog *benchmark.Catalog
	planner *planner.Planner
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - ctx: Context used while connecting to the store
//   - cfg: Application configuration
//
// Returns:
//   - *Container: Fully wired container with all dependencies
//   - error: Any error encountered during dependency creation
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	adapter := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	logger := logging.Logger(adapter)
	store.SetLogger(adapter.Logrus())
	benchmark.SetLogger(adapter.Logrus())
	currencyutils.SetLogger(adapter.Logrus())
	fileutils.SetLogger(adapter.Logrus())

	catalog := benchmark.Default()
	if cfg.Benchmarks.File != "" {
		merged, err := catalog.LoadOverrides(cfg.Benchmarks.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load benchmarks: %w", err)
		}
		catalog = merged
		logger.Info("Loaded benchmark overrides", logging.F(logging.FieldFile, cfg.Benchmarks.File))
	}

	backend, err := store.Open(ctx, store.Options{
		Backend:     cfg.Store.Backend,
		Path:        cfg.Store.Path,
		RedisAddr:   cfg.Store.RedisAddr,
		RedisPrefix: cfg.Store.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	planStore := store.NewPlanStore(backend, logger)

	p := planner.New(planStore, catalog, logger, planner.Options{
		DefaultRate:     cfg.Currency.DefaultRate,
		BaseCurrency:    cfg.Currency.Base,
		TargetCurrency:  cfg.Currency.Target,
		DefaultCategory: cfg.Checklist.DefaultCategory,
	})

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Store.Backend),
		logging.F(logging.FieldCount, len(catalog.Cities())))

	return &Container{
		logger:  logger,
		config:  cfg,
		backend: backend,
		store:   planStore,
		catalog: catalog,
		planner: p,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the typed plan store.
func (c *Container) GetStore() *store.PlanStore {
	return c.store
}

// GetCatalog returns the benchmark catalog, including overrides.
func (c *Container) GetCatalog() *benchmark.Catalog {
	return c.catalog
}

// GetPlanner returns the planner.
func (c *Container) GetPlanner() *planner.Planner {
	return c.planner
}

// Close releases the store backend.
func (c *Container) Close() error {
	if err := c.backend.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
