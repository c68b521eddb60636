package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative width",
			mutate:  func(c *Config) { c.Width = -1 },
			wantErr: "width",
		},
		{
			name:    "negative margin",
			mutate:  func(c *Config) { c.Margin = -1 },
			wantErr: "margin",
		},
		{
			name:    "empty rule char",
			mutate:  func(c *Config) { c.RuleChar = "" },
			wantErr: "rule_char",
		},
		{
			name:    "multi character rule",
			mutate:  func(c *Config) { c.RuleChar = "--" },
			wantErr: "rule_char",
		},
		{
			name:    "zero cache entries",
			mutate:  func(c *Config) { c.CacheEntries = 0 },
			wantErr: "cache_entries",
		},
		{
			name:    "zero cache operations",
			mutate:  func(c *Config) { c.CacheOperations = 0 },
			wantErr: "cache_operations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAcceptsWideRuleRune(t *testing.T) {
	cfg := Default()
	cfg.RuleChar = "═"
	assert.NoError(t, cfg.Validate())
}

func TestFromYAMLPartialOverlay(t *testing.T) {
	cfg, err := FromYAML([]byte("width: 72\n"))
	require.NoError(t, err)

	assert.Equal(t, 72, cfg.Width)
	assert.Equal(t, DefaultMargin, cfg.Margin, "unset keys keep defaults")
	assert.Equal(t, DefaultRuleChar, cfg.RuleChar)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("width: [not an int]\n"))
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	original := Default()
	original.Width = 100
	original.RuleChar = "="

	data, err := original.ToYAML()
	require.NoError(t, err)

	restored, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestTemplateParsesToDefaults(t *testing.T) {
	cfg, err := FromYAML(Template())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}
