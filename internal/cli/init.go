package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mrm007/opencode-responsive-tables/internal/configloader"
	"github.com/mrm007/opencode-responsive-tables/internal/logging"
	"github.com/mrm007/opencode-responsive-tables/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdreflow configuration file",
		Long: `Create a new .mdreflow.yml configuration file in the current directory
with the defaults documented inline.

Examples:
  mdreflow init                   Create .mdreflow.yml
  mdreflow init --output conf.yml Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: "+configloader.ProjectConfigName+")")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigName
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return errors.Join(ErrConfig,
				fmt.Errorf("file %q already exists; use --force to overwrite", outputPath))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := os.WriteFile(absPath, config.Template(), configFilePermissions); err != nil {
		return errors.Join(ErrIO, fmt.Errorf("write %s: %w", outputPath, err))
	}

	logger.Info("created configuration", logging.FieldPath, outputPath)
	return nil
}
