package scoring

// Summary holds the dashboard key metrics.
type Summary struct {
	Total    int `json:"total"`
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Low      int `json:"low"`
}

// Summarize counts regions per readiness tier.
func Summarize(ranked []ScoredRegion) Summary {
	s := Summary{Total: len(ranked)}
	for _, r := range ranked {
		switch r.Readiness.Tier {
		case TierHigh:
			s.High++
		case TierModerate:
			s.Moderate++
		default:
			s.Low++
		}
	}
	return s
}

// ChartRow is one bar of the ranking chart.
type ChartRow struct {
	Name               string  `json:"name"`
	CERS               float64 `json:"cers"`
	RenewablePotential float64 `json:"renewable_potential"`
	GridAccess         float64 `json:"grid_access"`
	Regulatory         float64 `json:"regulatory"`
	Implementation     float64 `json:"implementation"`
}

// ChartRows projects the ranked list onto chart rows, keeping order.
func ChartRows(ranked []ScoredRegion) []ChartRow {
	out := make([]ChartRow, len(ranked))
	for i, r := range ranked {
		out[i] = ChartRow{
			Name:               r.Name,
			CERS:               r.CERS,
			RenewablePotential: r.P,
			GridAccess:         r.G,
			Regulatory:         r.R,
			Implementation:     r.H,
		}
	}
	return out
}
