package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrm007/opencode-responsive-tables/internal/configloader"
	"github.com/mrm007/opencode-responsive-tables/internal/logging"
	"github.com/mrm007/opencode-responsive-tables/internal/ui/pretty"
	"github.com/mrm007/opencode-responsive-tables/pkg/config"
	"github.com/mrm007/opencode-responsive-tables/pkg/fsutil"
	"github.com/mrm007/opencode-responsive-tables/pkg/pipeline"
	"github.com/mrm007/opencode-responsive-tables/pkg/termsize"
	"github.com/mrm007/opencode-responsive-tables/pkg/textwidth"
)

type formatFlags struct {
	width  int
	margin int
	write  bool
}

func newFormatCommand() *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Reflow tables in markdown documents",
		Long:  formatLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 0,
		"force the available width in columns (0 = detect from terminal)")
	cmd.Flags().IntVar(&flags.margin, "margin", config.DefaultMargin,
		"safety margin subtracted from a detected terminal width")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false,
		"rewrite files in place instead of printing to stdout")

	return cmd
}

const formatLongDescription = `Reflow markdown tables that are too wide for the terminal.

Reads stdin when no paths are given, otherwise processes the named files.
Tables that fit are passed through unchanged; wider tables become stacked
"**column**: value" cards. With no terminal width known and no --width,
everything passes through.

Examples:
  some-generator | mdreflow format      # Filter a stream
  mdreflow format README.md             # Print reflowed file to stdout
  mdreflow format -w docs/*.md          # Rewrite files in place
  mdreflow format --width 60 notes.md   # Force the available width`

func runFormat(cmd *cobra.Command, args []string, flags *formatFlags) error {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(ErrConfig, err)
	}
	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	// CLI flags win over file and environment.
	if cmd.Flags().Changed("width") {
		cfg.Width = flags.width
	}
	if cmd.Flags().Changed("margin") {
		cfg.Margin = flags.margin
	}
	if err := cfg.Validate(); err != nil {
		return errors.Join(ErrConfig, err)
	}

	// A forced width is the available width as-is; the margin only
	// applies to a detected terminal width.
	width := cfg.Width
	if width == 0 {
		width = termsize.Available(termsize.Columns(), cfg.Margin)
	}
	logger.Debug("resolved width",
		logging.FieldWidth, width,
		logging.FieldMargin, cfg.Margin,
	)

	stage := pipeline.New(pipeline.Options{
		Width:    func() int { return width },
		Cache:    textwidth.NewCache(cfg.CacheEntries, cfg.CacheOperations),
		RuleChar: cfg.RuleChar,
		Logger:   logger,
	})

	if len(args) == 0 {
		return formatStream(cmd.InOrStdin(), cmd.OutOrStdout(), stage)
	}
	return formatFiles(cmd, args, flags, stage)
}

// formatStream filters one document from r to w.
func formatStream(r io.Reader, w io.Writer, stage *pipeline.Stage) error {
	input, err := io.ReadAll(r)
	if err != nil {
		return errors.Join(ErrIO, fmt.Errorf("read stdin: %w", err))
	}
	if _, err := io.WriteString(w, stage.Process(string(input))); err != nil {
		return errors.Join(ErrIO, fmt.Errorf("write stdout: %w", err))
	}
	return nil
}

// formatFiles processes each named file, either rewriting it in place or
// printing the result to stdout.
func formatFiles(cmd *cobra.Command, paths []string, flags *formatFlags, stage *pipeline.Stage) error {
	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
	logger := logging.Default()

	changed := 0
	for _, path := range paths {
		input, err := os.ReadFile(path)
		if err != nil {
			return errors.Join(ErrIO, fmt.Errorf("read %s: %w", path, err))
		}

		output := stage.Process(string(input))

		if !flags.write {
			if _, err := io.WriteString(cmd.OutOrStdout(), output); err != nil {
				return errors.Join(ErrIO, fmt.Errorf("write stdout: %w", err))
			}
			continue
		}

		if output == string(input) {
			logger.Debug("unchanged", logging.FieldPath, path)
			continue
		}
		if err := fsutil.WriteAtomic(path, []byte(output)); err != nil {
			return errors.Join(ErrIO, fmt.Errorf("write %s: %w", path, err))
		}
		changed++
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			styles.Success.Render("reflowed"), styles.FilePath.Render(path))
	}

	if flags.write {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Dim.Render(
			fmt.Sprintf("%d of %d files changed", changed, len(paths)),
		))
	}
	return nil
}
