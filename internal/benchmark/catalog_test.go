package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyabroad/departure-planner/internal/models"
)

func TestResolveReportsUsedDuration(t *testing.T) {
	catalog := Default()

	tests := []struct {
		city     string
		months   int
		resolved int
	}{
		{"toronto", 12, 12},
		{"toronto", 9, 12},
		{"vancouver", 3, 6},
		{"montreal", 24, 12},
		{"toronto", 30, 24},
	}
	for _, tt := range tests {
		_, resolved, ok := catalog.Resolve(tt.city, tt.months)
		require.True(t, ok)
		assert.Equal(t, tt.resolved, resolved, "%s %d months", tt.city, tt.months)
	}

	_, resolved, ok := catalog.Resolve("Atlantis", 12)
	assert.False(t, ok)
	assert.Zero(t, resolved)
}

func TestLookup(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name     string
		city     string
		months   int
		expected models.BenchmarkEntry
		found    bool
	}{
		{"exact duration", "Toronto", 12, models.NewBenchmarkEntry(1200, 400, 150, 250), true},
		{"rounds up to next duration", "toronto", 9, models.NewBenchmarkEntry(1200, 400, 150, 250), true},
		{"shorter than all durations", "Vancouver", 3, models.NewBenchmarkEntry(1400, 450, 160, 260), true},
		{"longer than all durations", "toronto", 30, models.NewBenchmarkEntry(1200, 400, 150, 250), true},
		{"montreal falls back to longest", "MONTREAL", 24, models.NewBenchmarkEntry(950, 380, 90, 200), true},
		{"whitespace trimmed", "  ottawa ", 6, models.NewBenchmarkEntry(1100, 400, 120, 220), true},
		{"unknown city", "Atlantis", 12, models.BenchmarkEntry{}, false},
		{"empty city", "", 12, models.BenchmarkEntry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := catalog.Lookup(tt.city, tt.months)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.True(t, tt.expected.Rent.Equal(entry.Rent))
				assert.True(t, tt.expected.Food.Equal(entry.Food))
				assert.True(t, tt.expected.Transport.Equal(entry.Transport))
				assert.True(t, tt.expected.Other.Equal(entry.Other))
			}
		})
	}
}

func TestDurationsAndCities(t *testing.T) {
	catalog := Default()
	assert.Equal(t, []int{6, 12, 18, 24}, catalog.Durations("Toronto"))
	assert.Equal(t, []int{6, 12}, catalog.Durations("montreal"))
	assert.Empty(t, catalog.Durations("atlantis"))
	assert.Equal(t, []string{"montreal", "ottawa", "toronto", "vancouver"}, catalog.Cities())
}

func TestMergeYAML(t *testing.T) {
	base := Default()
	data := []byte(`
cities:
  Calgary:
    12: {rent: 1100, food: 380, transport: 110, other: 210.5}
  toronto:
    12: {rent: 1500, food: 420, transport: 156, other: 260}
    0: {rent: 1}
`)

	merged, err := base.MergeYAML(data)
	require.NoError(t, err)

	entry, ok := merged.Lookup("calgary", 6)
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(210.5).Equal(entry.Other))

	entry, ok = merged.Lookup("toronto", 12)
	require.True(t, ok)
	assert.Equal(t, "1500", entry.Rent.String())
	assert.Equal(t, []int{6, 12, 18, 24}, merged.Durations("toronto"))

	original, _ := base.Lookup("toronto", 12)
	assert.Equal(t, "1200", original.Rent.String(), "base catalog must not change")
	_, ok = Default().Lookup("calgary", 12)
	assert.False(t, ok)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmarks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cities:\n  halifax:\n    12: {rent: 900, food: 350, transport: 80, other: 180}\n"), 0600))

	catalog, err := Default().LoadOverrides(path)
	require.NoError(t, err)
	assert.Contains(t, catalog.Cities(), "halifax")

	_, err = Default().LoadOverrides(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("cities: [oops"), 0600))
	_, err = Default().LoadOverrides(path)
	assert.Error(t, err)
}
