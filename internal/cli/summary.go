package cli

import (
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/cers/internal/output"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

func newSummaryCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count regions per readiness tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, _, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := engine.Summary()
			return o.emit(cmd, s, func(p *output.Printer) error {
				return p.PrintSummary(s)
			})
		},
	}
}

func newMethodologyCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "methodology",
		Short: "Explain the CERS formula and score bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := scoring.DescribeMethodology()
			return o.emit(cmd, m, func(p *output.Printer) error {
				return p.PrintMethodology(m)
			})
		},
	}
}
