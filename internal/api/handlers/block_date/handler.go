package block_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/schedule/blocked-dates
// Body: {"date": "YYYY-MM-DD", "reason": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.BlockedDate
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/schedule/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.BlockDate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /admin/schedule/blocked-dates - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /admin/schedule/blocked-dates - Failed to block date: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/schedule/blocked-dates - Date blocked: %s", req.Date)
	handlers.RespondJSON(w, http.StatusCreated, schedule)
}
