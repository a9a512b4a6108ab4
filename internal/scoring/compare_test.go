package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/cers/internal/store"
)

func TestBuildComparisonMatrixTwoRegions(t *testing.T) {
	e := NewEngine(store.DefaultCatalog(), discardLogger())
	sel, err := e.Select([]string{"Absheron", "Nakhchivan"})
	require.NoError(t, err)

	m := BuildComparisonMatrix(sel)

	require.Len(t, m.Rows, 4)
	require.Len(t, m.Series, 2)
	for _, row := range m.Rows {
		assert.Len(t, row.Values, 2, row.Indicator)
	}

	assert.Equal(t, []float64{85, 82}, m.Rows[0].Values)
	assert.Equal(t, []float64{90, 55}, m.Rows[1].Values)
	assert.Equal(t, []float64{88, 68}, m.Rows[2].Values)
	assert.Equal(t, []float64{82, 52}, m.Rows[3].Values)

	assert.Equal(t, IndicatorP, m.Rows[0].Indicator)
	assert.Equal(t, "Renewable Potential", m.Rows[0].Label)
	assert.Equal(t, IndicatorH, m.Rows[3].Indicator)
}

func TestBuildComparisonMatrixUsesRawIndicators(t *testing.T) {
	regions := []store.Region{
		{Name: "A", P: 85.5, G: 10, R: 20, H: 30},
		{Name: "B", P: 1, G: 2, R: 3, H: 4},
	}
	m := BuildComparisonMatrix(Rank(regions))

	v, ok := m.Value(IndicatorP, "A")
	require.True(t, ok)
	assert.Equal(t, 85.5, v)

	v, ok = m.Value(IndicatorH, "B")
	require.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = m.Value(IndicatorG, "C")
	assert.False(t, ok)
}

func TestBuildComparisonMatrixSeries(t *testing.T) {
	e := NewEngine(store.DefaultCatalog(), discardLogger())
	sel, err := e.Select([]string{"Lankaran", "Absheron", "Sheki-Zagatala"})
	require.NoError(t, err)

	m := BuildComparisonMatrix(sel)
	require.Len(t, m.Series, 3)

	assert.Equal(t, ComparisonSeries{Region: "Lankaran", Color: "#3b82f6", CERS: 67.7, Level: "Moderate"}, m.Series[0])
	assert.Equal(t, ComparisonSeries{Region: "Absheron", Color: "#10b981", CERS: 86.6, Level: "High"}, m.Series[1])
	assert.Equal(t, "#f59e0b", m.Series[2].Color)
}

func TestBuildComparisonMatrixEmpty(t *testing.T) {
	m := BuildComparisonMatrix(nil)
	assert.Len(t, m.Rows, 4)
	assert.Empty(t, m.Series)
	for _, row := range m.Rows {
		assert.Empty(t, row.Values)
	}
}
