package export_bookings_csv

import (
	"bytes"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
)

const filename = "bookings.csv"

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

// Handle GET /api/v1/admin/export/bookings.csv
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// буфер, чтобы при ошибке отдать 500, а не обрезанный файл
	var buf bytes.Buffer
	if err := h.useCase.WriteBookingsCSV(r.Context(), &buf); err != nil {
		h.logger.Error("GET /admin/export/bookings.csv - Failed to build csv: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("GET /admin/export/bookings.csv - Failed to write response: %v", err)
	}
}
