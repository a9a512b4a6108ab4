package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/cers/internal/export"
	"github.com/MikeSquared-Agency/cers/internal/hermes"
	"github.com/MikeSquared-Agency/cers/internal/scoring"
)

type ExportHandler struct {
	engine *scoring.Engine
	hermes hermes.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewExportHandler(engine *scoring.Engine, h hermes.Client, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{engine: engine, hermes: h, logger: logger, now: time.Now}
}

// Export renders the ranked list as a downloadable file.
// GET /api/v1/export/{format}
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	ranked := h.engine.Ranked()
	generated := h.now()
	data, err := export.Render(format, ranked, generated)
	if errors.Is(err, export.ErrUnknownFormat) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	exportID := uuid.New().String()
	exportsTotal.WithLabelValues(string(format)).Inc()

	if h.hermes != nil {
		ev := hermes.ExportGeneratedEvent{
			ExportID:    exportID,
			Format:      string(format),
			FileName:    format.FileName(),
			Regions:     len(ranked),
			Bytes:       len(data),
			GeneratedAt: generated.UTC(),
		}
		if err := h.hermes.Publish(hermes.SubjectExportGenerated(string(format)), ev); err != nil {
			h.logger.Warn("failed to publish export event", "export_id", exportID, "error", err)
		}
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.FileName()))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Export-ID", exportID)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
