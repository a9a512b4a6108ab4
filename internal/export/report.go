package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

const (
	reportTitle = "CLEAN ENERGY FUNDING PRIORITIZATION TOOL - REGIONAL ANALYSIS REPORT"
	reportRule  = "============================================================================"

	// ReportDateLayout matches the short US locale date, e.g. 10/18/2026.
	ReportDateLayout = "1/2/2006"
)

const methodologySection = `METHODOLOGY
` + reportRule + `
` + scoring.Formula + `

Where:
P = Renewable Energy Potential (35% weight)
G = Grid & Infrastructure Accessibility (25% weight)
R = Regulatory & Policy Readiness (25% weight)
H = Historical Implementation Capacity (15% weight)

SCORE INTERPRETATION
- 75-100: High Readiness → Priority for immediate public funding
- 55-74: Moderate Readiness → Conditional funding or preparatory support
- Below 55: Low Readiness → Not ready for funding; enabling actions required

` + reportRule + `
CECECO Clean Energy Hackathon 2026
Supporting Azerbaijan's 2030 Clean Energy Goals`

// Report renders the plain-text analysis report.
func Report(ranked []scoring.ScoredRegion, generated time.Time) []byte {
	var b strings.Builder
	summary := scoring.Summarize(ranked)

	fmt.Fprintf(&b, "%s\n", reportTitle)
	fmt.Fprintf(&b, "Generated: %s\n", generated.Format(ReportDateLayout))
	fmt.Fprintf(&b, "%s\n\n", reportRule)

	b.WriteString("SUMMARY STATISTICS\n")
	fmt.Fprintf(&b, "- Total Regions Analyzed: %d\n", summary.Total)
	fmt.Fprintf(&b, "- High Readiness Regions (CERS ≥ 75): %d\n", summary.High)
	fmt.Fprintf(&b, "- Moderate Readiness Regions (CERS 55-74): %d\n", summary.Moderate)
	fmt.Fprintf(&b, "- Low Readiness Regions (CERS < 55): %d\n\n", summary.Low)

	b.WriteString("REGIONAL RANKINGS\n")
	fmt.Fprintf(&b, "%s\n", reportRule)

	blocks := make([]string, len(ranked))
	for i, r := range ranked {
		blocks[i] = regionBlock(i+1, r)
	}
	b.WriteString(strings.Join(blocks, "\n"))
	b.WriteString("\n\n")

	b.WriteString(methodologySection)

	return []byte(strings.TrimSpace(b.String()))
}

func regionBlock(rank int, r scoring.ScoredRegion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%d. %s\n", rank, r.Name)
	fmt.Fprintf(&b, "   Overall CERS: %s\n", formatNumber(r.CERS))
	fmt.Fprintf(&b, "   - Renewable Potential (35%%): %s\n", formatNumber(r.P))
	fmt.Fprintf(&b, "   - Grid & Infrastructure (25%%): %s\n", formatNumber(r.G))
	fmt.Fprintf(&b, "   - Regulatory Readiness (25%%): %s\n", formatNumber(r.R))
	fmt.Fprintf(&b, "   - Implementation History (15%%): %s\n", formatNumber(r.H))
	b.WriteString("   \n")
	fmt.Fprintf(&b, "   Readiness Level: %s\n", r.Readiness.Level)
	fmt.Fprintf(&b, "   Recommendation: %s\n", r.Readiness.Recommendation)
	b.WriteString("   \n")
	b.WriteString("   Regional Details:\n")
	fmt.Fprintf(&b, "   - Solar Potential: %s\n", r.Details.Solar)
	fmt.Fprintf(&b, "   - Wind Potential: %s\n", r.Details.Wind)
	fmt.Fprintf(&b, "   - Grid Status: %s\n", r.Details.Grid)
	fmt.Fprintf(&b, "   - Project Track Record: %s\n", r.Details.Projects)
	return b.String()
}
