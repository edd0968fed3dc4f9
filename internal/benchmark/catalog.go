// Package benchmark holds the reference monthly living costs per city and
// study duration, in CAD.
package benchmark

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"studyabroad/departure-planner/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Catalog maps a lower-case city name to its entries keyed by duration in months.
type Catalog struct {
	cities map[string]map[int]models.BenchmarkEntry
}

var defaults = map[string]map[int]models.BenchmarkEntry{
	"toronto": {
		6:  models.NewBenchmarkEntry(1300, 450, 150, 250),
		12: models.NewBenchmarkEntry(1200, 400, 150, 250),
		18: models.NewBenchmarkEntry(1200, 400, 150, 250),
		24: models.NewBenchmarkEntry(1200, 400, 150, 250),
	},
	"vancouver": {
		6:  models.NewBenchmarkEntry(1400, 450, 160, 260),
		12: models.NewBenchmarkEntry(1350, 420, 160, 260),
		18: models.NewBenchmarkEntry(1350, 420, 160, 260),
		24: models.NewBenchmarkEntry(1350, 420, 160, 260),
	},
	"montreal": {
		6:  models.NewBenchmarkEntry(1000, 400, 90, 200),
		12: models.NewBenchmarkEntry(950, 380, 90, 200),
	},
	"ottawa": {
		6:  models.NewBenchmarkEntry(1100, 400, 120, 220),
		12: models.NewBenchmarkEntry(1050, 380, 120, 220),
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{cities: cloneTable(defaults)}
}

func cloneTable(src map[string]map[int]models.BenchmarkEntry) map[string]map[int]models.BenchmarkEntry {
	out := make(map[string]map[int]models.BenchmarkEntry, len(src))
	for city, durations := range src {
		inner := make(map[int]models.BenchmarkEntry, len(durations))
		for months, entry := range durations {
			inner[months] = entry
		}
		out[city] = inner
	}
	return out
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Lookup resolves the benchmark for a city and duration. The exact duration is
// preferred, then the smallest longer one, then the longest available.
// It reports false only for unknown cities.
func (c *Catalog) Lookup(city string, durationMonths int) (models.BenchmarkEntry, bool) {
	entry, _, ok := c.Resolve(city, durationMonths)
	return entry, ok
}

// Resolve is Lookup that also returns the duration whose entry was used.
func (c *Catalog) Resolve(city string, durationMonths int) (models.BenchmarkEntry, int, bool) {
	durations, ok := c.cities[normalizeCity(city)]
	if !ok || len(durations) == 0 {
		return models.BenchmarkEntry{}, 0, false
	}

	if entry, ok := durations[durationMonths]; ok {
		return entry, durationMonths, true
	}

	keys := sortedDurations(durations)
	for _, months := range keys {
		if months >= durationMonths {
			return durations[months], months, true
		}
	}
	longest := keys[len(keys)-1]
	return durations[longest], longest, true
}

// Durations lists the available durations for a city in ascending order.
func (c *Catalog) Durations(city string) []int {
	return sortedDurations(c.cities[normalizeCity(city)])
}

// Cities lists the known cities in ascending order.
func (c *Catalog) Cities() []string {
	out := make([]string, 0, len(c.cities))
	for city := range c.cities {
		out = append(out, city)
	}
	sort.Strings(out)
	return out
}

func sortedDurations(durations map[int]models.BenchmarkEntry) []int {
	keys := make([]int, 0, len(durations))
	for months := range durations {
		keys = append(keys, months)
	}
	sort.Ints(keys)
	return keys
}

// overrideFile is the YAML layout accepted by LoadOverrides.
type overrideFile struct {
	Cities map[string]map[int]overrideEntry `yaml:"cities"`
}

type overrideEntry struct {
	Rent      float64 `yaml:"rent"`
	Food      float64 `yaml:"food"`
	Transport float64 `yaml:"transport"`
	Other     float64 `yaml:"other"`
}

// LoadOverrides reads a YAML file and returns a new catalog with its cities
// merged over this one. A city present in the file replaces the city's
// entries for the durations it lists.
func (c *Catalog) LoadOverrides(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark overrides: %w", err)
	}
	return c.MergeYAML(data)
}

// MergeYAML merges YAML-encoded overrides over this catalog.
func (c *Catalog) MergeYAML(data []byte) (*Catalog, error) {
	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark overrides: %w", err)
	}

	merged := cloneTable(c.cities)
	for city, durations := range file.Cities {
		key := normalizeCity(city)
		if key == "" {
			continue
		}
		if merged[key] == nil {
			merged[key] = make(map[int]models.BenchmarkEntry)
		}
		for months, e := range durations {
			if months < 1 {
				log.WithField("city", key).Warnf("Ignoring benchmark with invalid duration %d", months)
				continue
			}
			merged[key][months] = models.BenchmarkEntry{
				Rent:      decimal.NewFromFloat(e.Rent),
				Food:      decimal.NewFromFloat(e.Food),
				Transport: decimal.NewFromFloat(e.Transport),
				Other:     decimal.NewFromFloat(e.Other),
			}
		}
	}

	log.WithField("count", len(file.Cities)).Debug("Merged benchmark overrides")
	return &Catalog{cities: merged}, nil
}
