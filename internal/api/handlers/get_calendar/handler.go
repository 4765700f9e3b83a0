package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/service/availability"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
	msgInvalidMonth = "некорректный месяц или год"
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

// Handle GET /api/v1/availability/calendar
// Query params: year, month (1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var query CalendarQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /availability/calendar - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	days, err := h.service.Calendar(r.Context(), query.Year, query.Month)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidMonth):
			h.logger.Warn("GET /availability/calendar - Invalid month: year=%d month=%d", query.Year, query.Month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /availability/calendar - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(query.Year, query.Month, days))
}
