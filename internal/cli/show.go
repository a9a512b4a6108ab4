package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/cers/internal/output"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

type regionView struct {
	Rank      int                    `json:"rank" yaml:"rank"`
	Region    scoring.ScoredRegion   `json:"region" yaml:"region"`
	Breakdown []scoring.FactorResult `json:"breakdown" yaml:"breakdown"`
}

func newShowCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <region>",
		Short: "Show one region's score breakdown",
		Long: `Show a region's CERS, readiness tier and per-indicator contributions.
Region names are matched case-insensitively.

Examples:
  cers show Absheron
  cers show "guba-khachmaz" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, engine, _, err := o.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			sr, rank, err := engine.Lookup(strings.Join(args, " "))
			if err != nil {
				return err
			}
			view := regionView{Rank: rank, Region: sr, Breakdown: scoring.Breakdown(sr.Region)}
			return o.emit(cmd, view, func(p *output.Printer) error {
				return p.PrintRegion(sr, rank)
			})
		},
	}
}
