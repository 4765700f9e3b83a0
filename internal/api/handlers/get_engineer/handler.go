package get_engineer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const msgNotFound = "инженер не найден"

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

// Handle GET /api/v1/admin/engineers/{engineerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	engineerID := mux.Vars(r)["engineerId"]

	engineer, err := h.service.GetEngineer(r.Context(), engineerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("GET /admin/engineers/{id} - Engineer not found: id=%s", engineerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/engineers/{id} - Failed to get engineer: id=%s, error=%v", engineerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, engineer)
}
