package get_availability

import (
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Опубликованная проекция расписания для публичной формы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	availability, err := h.service.Availability(r.Context())
	if err != nil {
		h.logger.Error("GET /availability - Failed to load availability: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, availability)
}
