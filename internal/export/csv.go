package export

import (
	"strconv"
	"strings"

	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

var csvHeader = []string{
	"Rank",
	"Region",
	"CERS",
	"Renewable Potential (P)",
	"Grid Access (G)",
	"Regulatory (R)",
	"Implementation (H)",
	"Readiness Level",
	"Recommendation",
}

// CSV renders the ranked list as comma-joined lines.
//
// Fields are not quoted or escaped. A comma inside a region name or text field
// shifts the columns of that row; downstream consumers depend on this exact layout,
// so it is kept as-is.
func CSV(ranked []scoring.ScoredRegion) []byte {
	lines := make([]string, 0, len(ranked)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for i, r := range ranked {
		row := []string{
			strconv.Itoa(i + 1),
			r.Name,
			formatNumber(r.CERS),
			formatNumber(r.P),
			formatNumber(r.G),
			formatNumber(r.R),
			formatNumber(r.H),
			r.Readiness.Level,
			r.Readiness.Recommendation,
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return []byte(strings.Join(lines, "\n"))
}
