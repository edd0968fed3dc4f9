// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"studyabroad/departure-planner/internal/fileutils"
	"studyabroad/departure-planner/internal/plannererror"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "PLANNER"

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend     string `mapstructure:"backend" yaml:"backend"`
	Path        string `mapstructure:"path" yaml:"path"`
	RedisAddr   string `mapstructure:"redis_addr" yaml:"redis_addr"`
	RedisPrefix string `mapstructure:"redis_prefix" yaml:"redis_prefix"`
}

// CurrencyConfig holds the currency pair and the fallback exchange rate.
type CurrencyConfig struct {
	Base        string  `mapstructure:"base" yaml:"base"`
	Target      string  `mapstructure:"target" yaml:"target"`
	DefaultRate float64 `mapstructure:"default_rate" yaml:"default_rate"`
}

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Store    StoreConfig    `mapstructure:"store" yaml:"store"`
	Currency CurrencyConfig `mapstructure:"currency" yaml:"currency"`

	Benchmarks struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"benchmarks" yaml:"benchmarks"`

	Checklist struct {
		DefaultCategory string `mapstructure:"default_category" yaml:"default_category"`
	} `mapstructure:"checklist" yaml:"checklist"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

var validBackends = []string{"file", "sqlite", "redis", "memory"}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.departure-planner")
	v.AddConfigPath(".departure-planner")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Store.Path = fileutils.ExpandHome(config.Store.Path)
	config.Benchmarks.File = fileutils.ExpandHome(config.Benchmarks.File)

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("store.backend", "file")
	v.SetDefault("store.path", "~/.departure-planner/planner.json")
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_prefix", "planner:")

	v.SetDefault("currency.base", "CAD")
	v.SetDefault("currency.target", "KRW")
	v.SetDefault("currency.default_rate", 1000)

	v.SetDefault("benchmarks.file", "")
	v.SetDefault("checklist.default_category", "Other")
	v.SetDefault("csv.delimiter", ",")
}

// Default returns the configuration built from defaults only.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	_ = v.Unmarshal(&config)
	config.Store.Path = fileutils.ExpandHome(config.Store.Path)
	return &config
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return &plannererror.ConfigError{Key: "log.level", Reason: fmt.Sprintf("invalid log level: %s", config.Log.Level)}
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return &plannererror.ConfigError{Key: "log.format", Reason: fmt.Sprintf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)}
	}

	if !isValidBackend(config.Store.Backend) {
		return &plannererror.ConfigError{Key: "store.backend", Reason: fmt.Sprintf("unknown backend '%s' (must be one of %s)", config.Store.Backend, strings.Join(validBackends, ", "))}
	}

	if config.Currency.DefaultRate <= 0 {
		return &plannererror.ConfigError{Key: "currency.default_rate", Reason: fmt.Sprintf("must be positive, got: %v", config.Currency.DefaultRate)}
	}

	if strings.TrimSpace(config.Currency.Base) == "" || strings.TrimSpace(config.Currency.Target) == "" {
		return &plannererror.ConfigError{Key: "currency", Reason: "base and target currency codes are required"}
	}

	if len(config.CSV.Delimiter) != 1 {
		return &plannererror.ConfigError{Key: "csv.delimiter", Reason: fmt.Sprintf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)}
	}

	return nil
}

func isValidBackend(name string) bool {
	name = strings.ToLower(name)
	for _, b := range validBackends {
		if b == name {
			return true
		}
	}
	return false
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
