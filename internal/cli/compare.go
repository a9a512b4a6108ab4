package cli

import (
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/cers/internal/dashboard"
	"github.com/MikeSquared-Agency/cers/internal/output"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

func newCompareCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <region> [region] [region]",
		Short: "Compare indicators for up to three regions",
		Long: `Compare the raw indicator values of up to three regions side by side.

Examples:
  cers compare Absheron Nakhchivan
  cers compare Absheron Lankaran Sheki-Zagatala -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := dashboard.NewComparison(args...)
			if err != nil {
				return err
			}
			_, engine, _, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			selected, err := engine.Select(sel.Names())
			if err != nil {
				return err
			}
			matrix := scoring.BuildComparisonMatrix(selected)
			return o.emit(cmd, matrix, func(p *output.Printer) error {
				return p.PrintComparison(matrix)
			})
		},
	}
}
