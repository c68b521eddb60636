package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mrm007/opencode-responsive-tables/pkg/config"
)

// Environment variable names recognized by the loader.
const (
	EnvWidth    = "MDREFLOW_WIDTH"
	EnvMargin   = "MDREFLOW_MARGIN"
	EnvRuleChar = "MDREFLOW_RULE_CHAR"
)

// applyEnv overlays MDREFLOW_* environment variables onto cfg, returning
// warnings for values that cannot be parsed. Unparseable values are
// ignored rather than fatal.
func applyEnv(cfg *config.Config) []string {
	var warnings []string

	if v := os.Getenv(EnvWidth); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Width = n
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring %s=%q: not a non-negative integer", EnvWidth, v))
		}
	}

	if v := os.Getenv(EnvMargin); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Margin = n
		} else {
			warnings = append(warnings, fmt.Sprintf("ignoring %s=%q: not a non-negative integer", EnvMargin, v))
		}
	}

	if v := os.Getenv(EnvRuleChar); v != "" {
		cfg.RuleChar = v
	}

	return warnings
}
