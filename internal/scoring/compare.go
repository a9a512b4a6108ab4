package scoring

// SeriesColors are assigned to compared regions in selection order.
var SeriesColors = []string{"#3b82f6", "#10b981", "#f59e0b"}

// ComparisonSeries is one selected region in a comparison.
type ComparisonSeries struct {
	Region string  `json:"region"`
	Color  string  `json:"color"`
	CERS   float64 `json:"cers"`
	Level  string  `json:"level"`
}

// ComparisonRow holds one indicator's raw values, aligned with the matrix series.
type ComparisonRow struct {
	Indicator Indicator `json:"indicator"`
	Label     string    `json:"label"`
	Values    []float64 `json:"values"`
}

// ComparisonMatrix is an indicator x region grid of raw indicator values.
type ComparisonMatrix struct {
	Series []ComparisonSeries `json:"series"`
	Rows   []ComparisonRow    `json:"rows"`
}

// BuildComparisonMatrix reshapes the selected regions into one row per indicator.
// Values are the raw indicators, not re-scored. The size limit and uniqueness of the
// selection are the caller's concern.
func BuildComparisonMatrix(selected []ScoredRegion) ComparisonMatrix {
	m := ComparisonMatrix{
		Series: make([]ComparisonSeries, len(selected)),
		Rows:   make([]ComparisonRow, len(Indicators)),
	}
	for i, r := range selected {
		m.Series[i] = ComparisonSeries{
			Region: r.Name,
			Color:  SeriesColors[i%len(SeriesColors)],
			CERS:   r.CERS,
			Level:  r.Readiness.ShortLevel(),
		}
	}
	for i, info := range Indicators {
		row := ComparisonRow{
			Indicator: info.Key,
			Label:     info.Name,
			Values:    make([]float64, len(selected)),
		}
		for j, r := range selected {
			row.Values[j] = IndicatorValue(r.Region, info.Key)
		}
		m.Rows[i] = row
	}
	return m
}

// Value returns the raw value of ind for the named region.
func (m ComparisonMatrix) Value(ind Indicator, region string) (float64, bool) {
	col := -1
	for i, s := range m.Series {
		if s.Region == region {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, false
	}
	for _, row := range m.Rows {
		if row.Indicator == ind {
			return row.Values[col], true
		}
	}
	return 0, false
}
