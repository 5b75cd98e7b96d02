// Package config loads rulecheck settings from environment variables and an
// optional .env file using viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. RULECHECK_LOG_LEVEL.
const EnvPrefix = "RULECHECK"

// Config holds the tool configuration.
// Priority: environment variables > .env file > defaults.
type Config struct {
	LogLevel      string // zerolog level name
	LogFormat     string // console or json
	OutputFormat  string // table, json or yaml
	RuleName      string // label attached to rules in logs and metrics
	RecoverPanics bool   // use TryApply instead of Apply
}

// Load reads configuration from the environment and ./.env if present.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an
// error; an unreadable or malformed one is.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	setConfigDefaults(v)

	return &Config{
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		OutputFormat:  v.GetString("OUTPUT_FORMAT"),
		RuleName:      v.GetString("RULE_NAME"),
		RecoverPanics: v.GetBool("RECOVER_PANICS"),
	}, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("OUTPUT_FORMAT", "table")
	v.SetDefault("RULE_NAME", "rulecheck")
	v.SetDefault("RECOVER_PANICS", true)
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string // Name of the configuration key
	Message string // Human-readable error message
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation failed [%s]: %s", e.Field, e.Message)
}

// Validate returns the first constraint violation, or nil.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return ValidationError{
			Field:   "LOG_FORMAT",
			Message: fmt.Sprintf("must be 'console' or 'json', got '%s'", c.LogFormat),
		}
	}

	switch strings.ToLower(c.OutputFormat) {
	case "table", "json", "yaml":
	default:
		return ValidationError{
			Field:   "OUTPUT_FORMAT",
			Message: fmt.Sprintf("must be 'table', 'json' or 'yaml', got '%s'", c.OutputFormat),
		}
	}

	if strings.TrimSpace(c.RuleName) == "" {
		return ValidationError{
			Field:   "RULE_NAME",
			Message: "rule name cannot be empty",
		}
	}

	return nil
}
