package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MikeSquared-Agency/cers/internal/scoring"
	"github.com/MikeSquared-Agency/cers/internal/store"
)

// Record is one element of the JSON export.
type Record struct {
	Rank       int             `json:"rank" yaml:"rank"`
	Region     string          `json:"region" yaml:"region"`
	CERS       float64         `json:"CERS" yaml:"cers"`
	Indicators Indicators      `json:"indicators" yaml:"indicators"`
	Readiness  ReadinessRecord `json:"readiness" yaml:"readiness"`
	Details    store.Details   `json:"details" yaml:"details"`
}

type Indicators struct {
	RenewablePotential float64 `json:"renewablePotential" yaml:"renewable_potential"`
	GridAccess         float64 `json:"gridAccess" yaml:"grid_access"`
	Regulatory         float64 `json:"regulatory" yaml:"regulatory"`
	Implementation     float64 `json:"implementation" yaml:"implementation"`
}

type ReadinessRecord struct {
	Level          string `json:"level" yaml:"level"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

// Records projects the ranked list onto export records.
func Records(ranked []scoring.ScoredRegion) []Record {
	out := make([]Record, len(ranked))
	for i, r := range ranked {
		out[i] = Record{
			Rank:   i + 1,
			Region: r.Name,
			CERS:   r.CERS,
			Indicators: Indicators{
				RenewablePotential: r.P,
				GridAccess:         r.G,
				Regulatory:         r.R,
				Implementation:     r.H,
			},
			Readiness: ReadinessRecord{
				Level:          r.Readiness.Level,
				Recommendation: r.Readiness.Recommendation,
			},
			Details: r.Details,
		}
	}
	return out
}

// JSON renders the ranked list as a 2-space indented array without HTML escaping.
func JSON(ranked []scoring.ScoredRegion) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Records(ranked)); err != nil {
		return nil, fmt.Errorf("encode json export: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
