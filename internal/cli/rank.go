package cli

import (
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/cers/internal/export"
	"github.com/MikeSquared-Agency/cers/internal/output"
)

func newRankCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "List regions ranked by CERS",
		Long: `List every region ranked by CERS, highest first.

Examples:
  cers rank
  cers rank -o csv
  cers rank -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, _, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			ranked := engine.Ranked()
			if o.output == "csv" {
				return o.printer(cmd).PrintCSV(ranked)
			}
			return o.emit(cmd, export.Records(ranked), func(p *output.Printer) error {
				return p.PrintRankings(ranked)
			})
		},
	}
}
