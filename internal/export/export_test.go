package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/cers/internal/scoring"
	"github.com/MikeSquared-Agency/cers/internal/store"
)

func defaultRanked() []scoring.ScoredRegion {
	return scoring.Rank(store.DefaultCatalog().ListRegions())
}

func TestCSVLayout(t *testing.T) {
	out := string(CSV(defaultRanked()))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 8)
	assert.Equal(t, "Rank,Region,CERS,Renewable Potential (P),Grid Access (G),Regulatory (R),Implementation (H),Readiness Level,Recommendation", lines[0])
	assert.Equal(t, "1,Absheron,86.6,85,90,88,82,High Readiness,Priority for immediate public funding", lines[1])
	assert.True(t, strings.HasPrefix(lines[7], "7,Sheki-Zagatala,64,"))
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestCSVCommaInFieldShiftsColumns(t *testing.T) {
	ranked := scoring.Rank([]store.Region{{Name: "North, East", P: 80, G: 80, R: 80, H: 80}})
	lines := strings.Split(string(CSV(ranked)), "\n")

	require.Len(t, lines, 2)
	assert.Len(t, strings.Split(lines[0], ","), 9)
	assert.Len(t, strings.Split(lines[1], ","), 10)
}

func TestCSVEmpty(t *testing.T) {
	assert.Equal(t, strings.Join(csvHeader, ","), string(CSV(nil)))
}

func TestJSONExport(t *testing.T) {
	data, err := JSON(defaultRanked())
	require.NoError(t, err)

	var records []Record
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 7)

	first := records[0]
	assert.Equal(t, 1, first.Rank)
	assert.Equal(t, "Absheron", first.Region)
	assert.Equal(t, 86.6, first.CERS)
	assert.Equal(t, 85.0, first.Indicators.RenewablePotential)
	assert.Equal(t, 82.0, first.Indicators.Implementation)
	assert.Equal(t, "High Readiness", first.Readiness.Level)
	assert.Equal(t, "Excellent (coastal)", first.Details.Wind)

	assert.Equal(t, 7, records[6].Rank)
	assert.Equal(t, "Sheki-Zagatala", records[6].Region)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, "[\n  {\n    \"rank\": 1,"))
	assert.False(t, strings.HasSuffix(s, "\n"))
	assert.NotContains(t, s, `\u0026`)
}

func TestJSONEmpty(t *testing.T) {
	data, err := JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReport(t *testing.T) {
	generated := time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
	out := string(Report(defaultRanked(), generated))

	assert.True(t, strings.HasPrefix(out, reportTitle+"\nGenerated: 3/5/2026\n"))
	assert.True(t, strings.HasSuffix(out, "Supporting Azerbaijan's 2030 Clean Energy Goals"))
	assert.Equal(t, 1, strings.Count(out, scoring.Formula))

	assert.Contains(t, out, "- Total Regions Analyzed: 7\n")
	assert.Contains(t, out, "- High Readiness Regions (CERS ≥ 75): 3\n")
	assert.Contains(t, out, "- Moderate Readiness Regions (CERS 55-74): 4\n")
	assert.Contains(t, out, "- Low Readiness Regions (CERS < 55): 0\n")

	for _, r := range store.DefaultCatalog().ListRegions() {
		assert.Equal(t, 1, strings.Count(out, r.Name), r.Name)
	}

	assert.Contains(t, out, "\n1. Absheron\n   Overall CERS: 86.6\n   - Renewable Potential (35%): 85\n")
	assert.Contains(t, out, "\n4. Guba-Khachmaz\n   Overall CERS: 74\n")
	assert.Less(t, strings.Index(out, "1. Absheron"), strings.Index(out, "7. Sheki-Zagatala"))
}

func TestReportEmpty(t *testing.T) {
	out := string(Report(nil, time.Now()))
	assert.Contains(t, out, "- Total Regions Analyzed: 0\n")
	assert.Contains(t, out, "METHODOLOGY")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"csv", FormatCSV},
		{"JSON", FormatJSON},
		{"report", FormatReport},
		{"txt", FormatReport},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xlsx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderFileNames(t *testing.T) {
	assert.Equal(t, "clean_energy_readiness_scores.csv", FormatCSV.FileName())
	assert.Equal(t, "clean_energy_readiness_scores.json", FormatJSON.FileName())
	assert.Equal(t, "clean_energy_readiness_report.txt", FormatReport.FileName())

	for _, f := range Formats() {
		data, err := Render(f, defaultRanked(), time.Now())
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}

	_, err := Render(Format("pdf"), nil, time.Now())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
