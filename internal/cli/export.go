package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/cers/internal/export"
)

func newExportCommand(o *options) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export <csv|json|report|all>",
		Short: "Write export files",
		Long: `Write the ranked regions to disk using the standard export file names:

  clean_energy_readiness_scores.csv
  clean_energy_readiness_scores.json
  clean_energy_readiness_report.txt

Examples:
  cers export csv
  cers export all --out ./exports`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"csv", "json", "report", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, engine, logger, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			formats := export.Formats()
			if !strings.EqualFold(args[0], "all") {
				f, err := export.ParseFormat(args[0])
				if err != nil {
					return err
				}
				formats = []export.Format{f}
			}

			dir := outDir
			if dir == "" {
				dir = cfg.Export.OutputDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			ranked := engine.Ranked()
			now := time.Now()
			for _, f := range formats {
				data, err := export.Render(f, ranked, now)
				if err != nil {
					return err
				}
				path := filepath.Join(dir, f.FileName())
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				logger.Debug("export written", "format", f, "path", path, "bytes", len(data))
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: export.output_dir from config)")
	return cmd
}
