package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"studyabroad/departure-planner/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Store.Backend = "memory"
	cfg.Store.Path = filepath.Join(t.TempDir(), "planner.json")
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      func(t *testing.T) *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "memory backend",
			config: testConfig,
		},
		{
			name: "file backend",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Store.Backend = "file"
				return cfg
			},
		},
		{
			name: "sqlite backend",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Store.Backend = "sqlite"
				return cfg
			},
		},
		{
			name: "unknown backend",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Store.Backend = "mongo"
				return cfg
			},
			expectError: true,
			errorMsg:    "failed to open store",
		},
		{
			name: "missing benchmark file",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Benchmarks.File = filepath.Join(t.TempDir(), "missing.yaml")
				return cfg
			},
			expectError: true,
			errorMsg:    "failed to load benchmarks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(context.Background(), tt.config(t))
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetConfig())
			assert.NotNil(t, c.GetStore())
			assert.NotNil(t, c.GetPlanner())
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainerWithBenchmarkOverrides(t *testing.T) {
	cfg := testConfig(t)
	cfg.Benchmarks.File = filepath.Join(t.TempDir(), "benchmarks.yaml")
	require.NoError(t, os.WriteFile(cfg.Benchmarks.File,
		[]byte("cities:\n  calgary:\n    12: {rent: 1100, food: 380, transport: 110, other: 210}\n"), 0600))

	c, err := NewContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	_, ok := c.GetCatalog().Lookup("Calgary", 12)
	assert.True(t, ok)
	assert.Same(t, c.GetCatalog(), c.GetPlanner().Catalog())
}
