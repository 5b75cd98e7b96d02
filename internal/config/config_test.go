package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "OUTPUT_FORMAT", "RULE_NAME", "RECOVER_PANICS"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, "rulecheck", cfg.RuleName)
	assert.True(t, cfg.RecoverPanics)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("RULECHECK_LOG_LEVEL", "debug")
	t.Setenv("RULECHECK_LOG_FORMAT", "json")
	t.Setenv("RULECHECK_OUTPUT_FORMAT", "yaml")
	t.Setenv("RULECHECK_RULE_NAME", "pricing")
	t.Setenv("RULECHECK_RECOVER_PANICS", "false")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, "pricing", cfg.RuleName)
	assert.False(t, cfg.RecoverPanics)
}

func TestLoad_DotEnvFile(t *testing.T) {
	t.Setenv("RULECHECK_OUTPUT_FORMAT", "") // empty values are ignored by viper
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OUTPUT_FORMAT=json\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestLoad_UnreadableFileIsAnError(t *testing.T) {
	// A directory exists but cannot be read as a dotenv file.
	cfg, err := LoadFile(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "warn", LogFormat: "console", OutputFormat: "table", RuleName: "r"}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantField: "LOG_FORMAT"},
		{name: "bad output format", mutate: func(c *Config) { c.OutputFormat = "csv" }, wantField: "OUTPUT_FORMAT"},
		{name: "empty rule name", mutate: func(c *Config) { c.RuleName = "  " }, wantField: "RULE_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}
