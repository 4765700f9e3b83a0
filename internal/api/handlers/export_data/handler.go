package export_data

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
)

type Handler struct {
	useCase ExportUseCase
	logger  Logger
}

func NewHandler(useCase ExportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	export, err := h.useCase.Export(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/export - Failed to export data: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("sia-export-%s.json", export.ExportDate.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	h.logger.Info("GET /admin/export - Exported %d appointments, %d engineers", len(export.Appointments), len(export.Engineers))
	handlers.RespondJSON(w, http.StatusOK, export)
}
