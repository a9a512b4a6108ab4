package scoring

// Formula is the CERS formula as printed in reports and the methodology page.
const Formula = "CERS = (P × 0.35) + (G × 0.25) + (R × 0.25) + (H × 0.15)"

// Band is one row of the score interpretation table.
type Band struct {
	Range          string `json:"range"`
	Level          string `json:"level"`
	Recommendation string `json:"recommendation"`
}

// WeightedIndicator pairs an indicator with its weight for display.
type WeightedIndicator struct {
	IndicatorInfo
	Weight        float64 `json:"weight"`
	WeightPercent string  `json:"weight_percent"`
}

// Methodology documents how CERS is computed and interpreted.
type Methodology struct {
	Formula    string              `json:"formula"`
	Indicators []WeightedIndicator `json:"indicators"`
	Bands      []Band              `json:"bands"`
}

// DescribeMethodology builds the methodology document from the live weights and tiers.
func DescribeMethodology() Methodology {
	w := DefaultWeights()
	m := Methodology{Formula: Formula}
	for _, info := range Indicators {
		weight := w.Of(info.Key)
		f, _ := weight.Float64()
		m.Indicators = append(m.Indicators, WeightedIndicator{
			IndicatorInfo: info,
			Weight:        f,
			WeightPercent: weight.Shift(2).String() + "%",
		})
	}
	ranges := []string{"75-100", "55-74", "< 55"}
	for i, t := range Tiers() {
		m.Bands = append(m.Bands, Band{
			Range:          ranges[i],
			Level:          t.Level,
			Recommendation: t.Recommendation,
		})
	}
	return m
}
