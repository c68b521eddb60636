// Package config defines the mdreflow configuration model.
package config

import (
	"fmt"
	"unicode/utf8"
)

// Default knob values.
const (
	DefaultMargin          = 10
	DefaultRuleChar        = "─"
	DefaultCacheEntries    = 4096
	DefaultCacheOperations = 256
)

// Config holds every tunable for the table reflow engine.
type Config struct {
	// Width forces the available width in columns. 0 means auto-detect
	// from the terminal.
	Width int `yaml:"width"`

	// Margin is the safety margin subtracted from a detected terminal
	// width. It does not apply to a forced Width.
	Margin int `yaml:"margin"`

	// RuleChar is the character drawn as the horizontal rule between
	// stacked cards. Must occupy a single terminal column.
	RuleChar string `yaml:"rule_char"`

	// CacheEntries bounds the width cache before a generational reset.
	CacheEntries int `yaml:"cache_entries"`

	// CacheOperations bounds the number of formatting operations between
	// generational resets.
	CacheOperations int `yaml:"cache_operations"`
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		Width:           0,
		Margin:          DefaultMargin,
		RuleChar:        DefaultRuleChar,
		CacheEntries:    DefaultCacheEntries,
		CacheOperations: DefaultCacheOperations,
	}
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be zero or positive, got %d", c.Width)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must be zero or positive, got %d", c.Margin)
	}
	if utf8.RuneCountInString(c.RuleChar) != 1 {
		return fmt.Errorf("rule_char must be a single character, got %q", c.RuleChar)
	}
	if c.CacheEntries <= 0 {
		return fmt.Errorf("cache_entries must be positive, got %d", c.CacheEntries)
	}
	if c.CacheOperations <= 0 {
		return fmt.Errorf("cache_operations must be positive, got %d", c.CacheOperations)
	}
	return nil
}
