package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/cers/internal/hermes"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
	"github.com/MikeSquared-Agency/cers/internal/store"
)

// MockHermes implements hermes.Client for testing
type MockHermes struct {
	mock.Mock
}

func (m *MockHermes) Publish(subject string, data interface{}) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func (m *MockHermes) Subscribe(subject string, handler func(string, []byte)) error {
	args := m.Called(subject, handler)
	return args.Error(0)
}

func (m *MockHermes) Close() {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestRouter(h hermes.Client) http.Handler {
	logger := discardLogger()
	engine := scoring.NewEngine(store.DefaultCatalog(), logger)
	return NewRouter(engine, h, logger)
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListRegions(t *testing.T) {
	router := setupTestRouter(hermes.NopClient{})
	w := get(t, router, "/api/v1/regions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var out []struct {
		Rank   int                  `json:"rank"`
		Region scoring.ScoredRegion `json:"region"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	require.Len(t, out, 7)

	want := []string{"Absheron", "Shirvan-Salyan", "Ganja-Gazakh", "Guba-Khachmaz", "Lankaran", "Nakhchivan", "Sheki-Zagatala"}
	for i, entry := range out {
		assert.Equal(t, i+1, entry.Rank)
		assert.Equal(t, want[i], entry.Region.Name)
	}
	assert.Equal(t, 86.6, out[0].Region.CERS)
	assert.Equal(t, "High Readiness", out[0].Region.Readiness.Level)
}

func TestGetRegion(t *testing.T) {
	router := setupTestRouter(hermes.NopClient{})
	w := get(t, router, "/api/v1/regions/guba-khachmaz")
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Rank      int                    `json:"rank"`
		Region    scoring.ScoredRegion   `json:"region"`
		Breakdown []scoring.FactorResult `json:"breakdown"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	assert.Equal(t, 4, out.Rank)
	assert.Equal(t, "Guba-Khachmaz", out.Region.Name)
	assert.Equal(t, 74.0, out.Region.CERS)
	assert.Equal(t, "Moderate Readiness", out.Region.Readiness.Level)
	require.Len(t, out.Breakdown, 4)
	assert.Equal(t, "Renewable Potential (35%)", out.Breakdown[0].Label)
}

func TestGetRegionNotFound(t *testing.T) {
	router := setupTestRouter(hermes.NopClient{})
	w := get(t, router, "/api/v1/regions/Atlantis")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "region not found")
}

func TestSummaryAndChart(t *testing.T) {
	router := setupTestRouter(hermes.NopClient{})

	w := get(t, router, "/api/v1/summary")
	require.Equal(t, http.StatusOK, w.Code)
	var s scoring.Summary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&s))
	assert.Equal(t, scoring.Summary{Total: 7, High: 3, Moderate: 4, Low: 0}, s)

	w = get(t, router, "/api/v1/chart")
	require.Equal(t, http.StatusOK, w.Code)
	var rows []scoring.ChartRow
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, 7)
	assert.Equal(t, "Absheron", rows[0].Name)
	assert.Equal(t, 86.6, rows[0].CERS)
}

func TestMethodology(t *testing.T) {
	router := setupTestRouter(hermes.NopClient{})
	w := get(t, router, "/api/v1/methodology")
	require.Equal(t, http.StatusOK, w.Code)

	var m scoring.Methodology
	require.NoError(t, json.NewDecoder(w.Body).Decode(&m))
	assert.Equal(t, scoring.Formula, m.Formula)
	assert.Len(t, m.Indicators, 4)
	assert.Len(t, m.Bands, 3)
}

func TestCompare(t *testing.T) {
	router := setupTestRouter(hermes.NopClient{})
	w := get(t, router, "/api/v1/compare?regions=Absheron,Nakhchivan")
	require.Equal(t, http.StatusOK, w.Code)

	var m scoring.ComparisonMatrix
	require.NoError(t, json.NewDecoder(w.Body).Decode(&m))
	require.Len(t, m.Series, 2)
	require.Len(t, m.Rows, 4)
	assert.Equal(t, "#3b82f6", m.Series[0].Color)
	assert.Equal(t, "Moderate", m.Series[1].Level)

	v, ok := m.Value(scoring.IndicatorG, "Nakhchivan")
	require.True(t, ok)
	assert.Equal(t, 55.0, v)
}

func TestCompareErrors(t *testing.T) {
	router := setupTestRouter(hermes.NopClient{})

	tests := []struct {
		name  string
		query string
		code  int
	}{
		{"missing", "", http.StatusBadRequest},
		{"too many", "?regions=Absheron,Lankaran,Nakhchivan,Ganja-Gazakh", http.StatusBadRequest},
		{"duplicate", "?regions=Absheron,absheron", http.StatusBadRequest},
		{"empty entry", "?regions=Absheron,,Lankaran", http.StatusBadRequest},
		{"unknown", "?regions=Absheron,Atlantis", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, router, "/api/v1/compare"+tt.query)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

func TestExportCSV(t *testing.T) {
	mh := &MockHermes{}
	mh.On("Publish", "cers.export.csv.generated", mock.AnythingOfType("hermes.ExportGeneratedEvent")).Return(nil)
	router := setupTestRouter(mh)

	before := testutil.ToFloat64(exportsTotal.WithLabelValues("csv"))
	w := get(t, router, "/api/v1/export/csv")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="clean_energy_readiness_scores.csv"`, w.Header().Get("Content-Disposition"))
	assert.Len(t, w.Header().Get("X-Export-ID"), 36)
	assert.Len(t, strings.Split(w.Body.String(), "\n"), 8)
	assert.Equal(t, before+1, testutil.ToFloat64(exportsTotal.WithLabelValues("csv")))

	mh.AssertExpectations(t)
	ev := mh.Calls[0].Arguments.Get(1).(hermes.ExportGeneratedEvent)
	assert.Equal(t, w.Header().Get("X-Export-ID"), ev.ExportID)
	assert.Equal(t, 7, ev.Regions)
	assert.Equal(t, w.Body.Len(), ev.Bytes)
}

func TestExportReportPublishFailureStillServes(t *testing.T) {
	mh := &MockHermes{}
	mh.On("Publish", mock.AnythingOfType("string"), mock.Anything).Return(errors.New("nats down"))
	router := setupTestRouter(mh)

	w := get(t, router, "/api/v1/export/report")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, w.Body.String(), "REGIONAL RANKINGS")
	mh.AssertNumberOfCalls(t, "Publish", 1)
}

func TestExportJSONWithoutHermes(t *testing.T) {
	router := setupTestRouter(nil)
	w := get(t, router, "/api/v1/export/json")
	require.Equal(t, http.StatusOK, w.Code)

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	assert.Len(t, records, 7)
}

func TestExportUnknownFormat(t *testing.T) {
	router := setupTestRouter(hermes.NopClient{})
	w := get(t, router, "/api/v1/export/xlsx")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsRouter(t *testing.T) {
	router := NewMetricsRouter()

	w := get(t, router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = get(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}
