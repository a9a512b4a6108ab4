package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/cers/internal/hermes"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

func NewRouter(engine *scoring.Engine, h hermes.Client, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	regions := NewRegionsHandler(engine)
	compare := NewCompareHandler(engine)
	exports := NewExportHandler(engine, h, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/regions", regions.List)
		r.Get("/regions/{name}", regions.Get)
		r.Get("/summary", regions.Summary)
		r.Get("/chart", regions.Chart)
		r.Get("/methodology", regions.Methodology)

		r.Get("/compare", compare.Compare)

		r.Get("/export/{format}", exports.Export)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
