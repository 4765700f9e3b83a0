package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const msgInvalidParams = "некорректные параметры запроса"

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

// Handle GET /api/v1/admin/bookings
// Query params: status, service, date, engineer (опционально, "all" = без фильтра)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter domain.AppointmentFilter
	if err := handlers.DecodeQuery(r, &filter); err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Found %d bookings", len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewAppointmentListResponse(list))
}
