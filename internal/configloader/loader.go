// Package configloader discovers and loads mdreflow configuration.
// Resolution order (highest to lowest): explicit --config path, project
// .mdreflow.yml found by upward search, MDREFLOW_* environment variables,
// defaults. CLI flags are merged on top by the command layer.
package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrm007/opencode-responsive-tables/pkg/config"
)

// ProjectConfigName is the per-project configuration file name.
const ProjectConfigName = ".mdreflow.yml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search upward from for a project
	// config. Defaults to the current working directory.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project discovery is skipped and a missing or unreadable
	// file is an error rather than a fallback.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the file actually loaded, or empty for defaults only.
	LoadedFrom string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.Default()}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	path := opts.ExplicitPath
	if path == "" {
		path = discoverProjectConfig(workDir)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err != nil && opts.ExplicitPath != "":
			return nil, fmt.Errorf("read config %s: %w", path, err)
		case err != nil:
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("skipping unreadable config %s: %v", path, err))
		default:
			cfg, err := config.FromYAML(data)
			if err != nil {
				return nil, fmt.Errorf("load config %s: %w", path, err)
			}
			result.Config = cfg
			result.LoadedFrom = path
		}
	}

	result.Warnings = append(result.Warnings, applyEnv(result.Config)...)

	if err := result.Config.Validate(); err != nil {
		return nil, errors.Join(errors.New("invalid configuration"), err)
	}

	return result, nil
}

// discoverProjectConfig walks from dir toward the filesystem root looking
// for the project config file. Returns "" when none exists.
func discoverProjectConfig(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
