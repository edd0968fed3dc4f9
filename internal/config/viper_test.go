package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyabroad/departure-planner/internal/plannererror"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "file", config.Store.Backend)
	assert.Equal(t, filepath.Join(home, ".departure-planner", "planner.json"), config.Store.Path)
	assert.Equal(t, "localhost:6379", config.Store.RedisAddr)
	assert.Equal(t, "planner:", config.Store.RedisPrefix)
	assert.Equal(t, "CAD", config.Currency.Base)
	assert.Equal(t, "KRW", config.Currency.Target)
	assert.Equal(t, 1000.0, config.Currency.DefaultRate)
	assert.Equal(t, "", config.Benchmarks.File)
	assert.Equal(t, "Other", config.Checklist.DefaultCategory)
	assert.Equal(t, ",", config.CSV.Delimiter)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"PLANNER_LOG_LEVEL":             "debug",
		"PLANNER_LOG_FORMAT":            "json",
		"PLANNER_STORE_BACKEND":         "sqlite",
		"PLANNER_STORE_PATH":            "/tmp/planner.db",
		"PLANNER_CURRENCY_DEFAULT_RATE": "980.5",
		"PLANNER_CSV_DELIMITER":         ";",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "sqlite", config.Store.Backend)
	assert.Equal(t, "/tmp/planner.db", config.Store.Path)
	assert.Equal(t, 980.5, config.Currency.DefaultRate)
	assert.Equal(t, ";", config.CSV.Delimiter)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
store:
  backend: "memory"
currency:
  default_rate: 1100
benchmarks:
  file: "benchmarks.yaml"
checklist:
  default_category: "Packing"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "memory", config.Store.Backend)
	assert.Equal(t, 1100.0, config.Currency.DefaultRate)
	assert.Equal(t, "benchmarks.yaml", config.Benchmarks.File)
	assert.Equal(t, "Packing", config.Checklist.DefaultCategory)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
store:
  backend: "sqlite"
currency:
  target: "USD"
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	t.Setenv("PLANNER_LOG_LEVEL", "error")
	t.Setenv("PLANNER_STORE_BACKEND", "memory")
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "memory", config.Store.Backend)
	assert.Equal(t, "USD", config.Currency.Target)
}

func TestInitializeConfig_Invalid(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("PLANNER_STORE_BACKEND", "mongo")

	_, err := InitializeConfig()
	var cfgErr *plannererror.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "store.backend", cfgErr.Key)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "yaml" },
			expectError:  "invalid log format",
		},
		{
			name:         "unknown backend",
			modifyConfig: func(c *Config) { c.Store.Backend = "postgres" },
			expectError:  "unknown backend 'postgres'",
		},
		{
			name:         "zero default rate",
			modifyConfig: func(c *Config) { c.Currency.DefaultRate = 0 },
			expectError:  "must be positive",
		},
		{
			name:         "empty target currency",
			modifyConfig: func(c *Config) { c.Currency.Target = " " },
			expectError:  "currency codes are required",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "CSV delimiter must be a single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		log       LogConfig
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{"text format info level", LogConfig{Level: "info", Format: "text"}, logrus.InfoLevel, false},
		{"json format debug level", LogConfig{Level: "debug", Format: "json"}, logrus.DebugLevel, true},
		{"invalid level falls back to info", LogConfig{Level: "loud", Format: "text"}, logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := ConfigureLoggingFromConfig(&Config{Log: tt.log})
			require.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel, logger.Level)
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PLANNER_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("PLANNER_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PLANNER_TEST_UNSET_VALUE", "fallback"))
}

// clearTestEnvVars blanks the planner variables for the duration of the test.
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"PLANNER_LOG_LEVEL",
		"PLANNER_LOG_FORMAT",
		"PLANNER_STORE_BACKEND",
		"PLANNER_STORE_PATH",
		"PLANNER_STORE_REDIS_ADDR",
		"PLANNER_STORE_REDIS_PREFIX",
		"PLANNER_CURRENCY_BASE",
		"PLANNER_CURRENCY_TARGET",
		"PLANNER_CURRENCY_DEFAULT_RATE",
		"PLANNER_BENCHMARKS_FILE",
		"PLANNER_CHECKLIST_DEFAULT_CATEGORY",
		"PLANNER_CSV_DELIMITER",
	}

	for _, envVar := range envVars {
		if value, ok := os.LookupEnv(envVar); ok {
			require.NoError(t, os.Unsetenv(envVar))
			t.Cleanup(func() { _ = os.Setenv(envVar, value) })
		}
	}
}
