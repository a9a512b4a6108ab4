package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MikeSquared-Agency/cers/internal/dashboard"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
	"github.com/MikeSquared-Agency/cers/internal/store"
)

type CompareHandler struct {
	engine *scoring.Engine
}

func NewCompareHandler(engine *scoring.Engine) *CompareHandler {
	return &CompareHandler{engine: engine}
}

// Compare returns the indicator matrix for up to three regions.
// GET /api/v1/compare?regions=Absheron,Lankaran
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("regions")
	if strings.TrimSpace(raw) == "" {
		writeError(w, http.StatusBadRequest, "regions query parameter required")
		return
	}

	sel, err := dashboard.NewComparison(strings.Split(raw, ",")...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	selected, err := h.engine.Select(sel.Names())
	if errors.Is(err, store.ErrRegionNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, scoring.BuildComparisonMatrix(selected))
}
