package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/cers/internal/scoring"
	"github.com/MikeSquared-Agency/cers/internal/store"
)

type RegionsHandler struct {
	engine *scoring.Engine
}

func NewRegionsHandler(engine *scoring.Engine) *RegionsHandler {
	return &RegionsHandler{engine: engine}
}

type rankedRegion struct {
	Rank   int                  `json:"rank"`
	Region scoring.ScoredRegion `json:"region"`
}

type regionDetail struct {
	Rank      int                     `json:"rank"`
	Region    scoring.ScoredRegion    `json:"region"`
	Breakdown []scoring.FactorResult `json:"breakdown"`
}

// List returns every region in rank order.
// GET /api/v1/regions
func (h *RegionsHandler) List(w http.ResponseWriter, r *http.Request) {
	ranked := h.engine.Ranked()
	out := make([]rankedRegion, len(ranked))
	for i, sr := range ranked {
		out[i] = rankedRegion{Rank: i + 1, Region: sr}
	}
	writeJSON(w, http.StatusOK, out)
}

// Get returns one region with its indicator breakdown.
// GET /api/v1/regions/{name}
func (h *RegionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid region name")
		return
	}

	sr, rank, err := h.engine.Lookup(name)
	if errors.Is(err, store.ErrRegionNotFound) {
		writeError(w, http.StatusNotFound, "region not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, regionDetail{
		Rank:      rank,
		Region:    sr,
		Breakdown: scoring.Breakdown(sr.Region),
	})
}

// GET /api/v1/summary
func (h *RegionsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Summary())
}

// GET /api/v1/chart
func (h *RegionsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Chart())
}

// GET /api/v1/methodology
func (h *RegionsHandler) Methodology(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.DescribeMethodology())
}
