package get_unavailable_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/service/availability"
)

const (
	msgInvalidQuery   = "некорректные параметры запроса"
	msgInvalidHorizon = "горизонт должен быть от 1 до 730 дней"
)

// UnavailableDatesQuery query параметры
type UnavailableDatesQuery struct {
	HorizonDays int `schema:"horizonDays"`
}

// UnavailableDatesResponse HTTP response model
type UnavailableDatesResponse struct {
	HorizonDays int      `json:"horizonDays"`
	Dates       []string `json:"dates"`
}

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

// Handle GET /api/v1/availability/unavailable-dates
// Query params: horizonDays (optional, default 180)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := UnavailableDatesQuery{HorizonDays: domain.DefaultHorizonDays}
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /availability/unavailable-dates - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	dates, err := h.service.UnavailableDates(r.Context(), query.HorizonDays)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidHorizon):
			h.logger.Warn("GET /availability/unavailable-dates - Invalid horizon: %d", query.HorizonDays)
			handlers.RespondBadRequest(w, msgInvalidHorizon)

		default:
			h.logger.Error("GET /availability/unavailable-dates - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &UnavailableDatesResponse{
		HorizonDays: query.HorizonDays,
		Dates:       dates,
	})
}
