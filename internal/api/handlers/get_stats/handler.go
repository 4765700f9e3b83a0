package get_stats

import (
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats(r.Context())
	h.logger.Info("GET /admin/stats - total=%d pending=%d confirmed=%d", stats.Total, stats.Pending, stats.Confirmed)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(stats))
}
