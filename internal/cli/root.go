// Package cli implements the cers command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/cers/internal/config"
	"github.com/MikeSquared-Agency/cers/internal/output"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
	"github.com/MikeSquared-Agency/cers/internal/store"
)

var outputFormats = []string{"table", "json", "yaml", "csv"}

// options holds the global flags shared by every subcommand.
type options struct {
	configPath string
	output     string
	noColor    bool
}

// NewRootCommand builds the full command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "cers",
		Short: "Clean Energy Readiness Score for regional funding prioritization",
		Long: `cers ranks regions by their Clean Energy Readiness Score:

  CERS = (P × 0.35) + (G × 0.25) + (R × 0.25) + (H × 0.15)

and classifies each into a funding readiness tier.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.noColor {
				color.NoColor = true
			}
			for _, f := range outputFormats {
				if o.output == f {
					return nil
				}
			}
			return fmt.Errorf("unsupported output format %q (want one of %s)", o.output, strings.Join(outputFormats, ", "))
		},
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "path to config file")
	root.PersistentFlags().StringVarP(&o.output, "output", "o", "table", "Output format (table, json, yaml, csv)")
	root.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "Disable colorized output")

	root.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return outputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newServeCommand(o),
		newRankCommand(o),
		newShowCommand(o),
		newCompareCommand(o),
		newExportCommand(o),
		newSummaryCommand(o),
		newMethodologyCommand(o),
		newEventsCommand(o),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads config and the region table and builds the scoring engine.
func (o *options) load(logOut io.Writer) (*config.Config, *scoring.Engine, *slog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(cfg.Logging, logOut)

	catalog, err := store.LoadCatalog(cfg.Data.RegionsFile)
	if err != nil {
		return nil, nil, nil, err
	}
	logger.Debug("region catalog loaded", "regions", catalog.Len(), "file", cfg.Data.RegionsFile)

	return cfg, scoring.NewEngine(catalog, logger), logger, nil
}

func (o *options) printer(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), !o.noColor && !color.NoColor)
}

// emit prints v as JSON or YAML, or calls table for the table format.
func (o *options) emit(cmd *cobra.Command, v interface{}, table func(p *output.Printer) error) error {
	p := o.printer(cmd)
	switch o.output {
	case "json":
		return p.PrintJSON(v)
	case "yaml":
		return p.PrintYAML(v)
	case "csv":
		return fmt.Errorf("csv output is only supported by the rank command")
	default:
		return table(p)
	}
}

func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
