package scoring

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MikeSquared-Agency/cers/internal/store"
)

// Indicator identifies one of the four weighted inputs.
type Indicator string

const (
	IndicatorP Indicator = "P"
	IndicatorG Indicator = "G"
	IndicatorR Indicator = "R"
	IndicatorH Indicator = "H"
)

// FullMark is the top of the indicator scale.
const FullMark = 100.0

// IndicatorInfo describes an indicator for charts, tables and the methodology page.
type IndicatorInfo struct {
	Key         Indicator `json:"key"`
	Name        string    `json:"name"`
	ShortName   string    `json:"short_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// Indicators lists the four indicators in formula order.
var Indicators = []IndicatorInfo{
	{
		Key:         IndicatorP,
		Name:        "Renewable Potential",
		ShortName:   "Renewable Potential",
		Title:       "Renewable Energy Potential",
		Description: "Natural suitability for renewable energy deployment including solar irradiation levels, wind resource availability, and other renewable sources.",
	},
	{
		Key:         IndicatorG,
		Name:        "Grid Access",
		ShortName:   "Grid Access",
		Title:       "Grid & Infrastructure",
		Description: "Proximity to transmission networks, grid capacity and stability, and access to transport infrastructure for project implementation.",
	},
	{
		Key:         IndicatorR,
		Name:        "Regulatory Readiness",
		ShortName:   "Regulatory",
		Title:       "Regulatory & Policy Readiness",
		Description: "Alignment with national renewable energy policies, presence of enabling regulations or incentives, and permitting clarity.",
	},
	{
		Key:         IndicatorH,
		Name:        "Implementation History",
		ShortName:   "Implementation",
		Title:       "Historical Implementation",
		Description: "Track record of completed or ongoing renewable energy projects, institutional experience, and evidence of timely delivery.",
	},
}

// IndicatorValue returns the raw value of ind for r.
func IndicatorValue(r store.Region, ind Indicator) float64 {
	switch ind {
	case IndicatorP:
		return r.P
	case IndicatorG:
		return r.G
	case IndicatorR:
		return r.R
	case IndicatorH:
		return r.H
	default:
		return 0
	}
}

// FactorResult captures one indicator's contribution to the total score.
type FactorResult struct {
	Indicator Indicator `json:"indicator"`
	Label     string    `json:"label"`
	Value     float64   `json:"value"`
	Weight    float64   `json:"weight"`
	Weighted  float64   `json:"weighted"`
	FullMark  float64   `json:"full_mark"`
}

// Breakdown returns the per-indicator contributions for r, in formula order.
// Weighted values are unrounded; only the total CERS is rounded.
func Breakdown(r store.Region) []FactorResult {
	w := DefaultWeights()
	out := make([]FactorResult, 0, len(Indicators))
	for _, info := range Indicators {
		weight := w.Of(info.Key)
		value := IndicatorValue(r, info.Key)
		weighted, _ := decimal.NewFromFloat(value).Mul(weight).Float64()
		wf, _ := weight.Float64()
		out = append(out, FactorResult{
			Indicator: info.Key,
			Label:     fmt.Sprintf("%s (%s%%)", info.ShortName, weight.Shift(2).String()),
			Value:     value,
			Weight:    wf,
			Weighted:  weighted,
			FullMark:  FullMark,
		})
	}
	return out
}
