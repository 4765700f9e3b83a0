package update_engineer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "инженер не найден"
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

// Handle PUT /api/v1/admin/engineers/{engineerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	engineerID := mux.Vars(r)["engineerId"]

	var req domain.EngineerInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/engineers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	engineer, err := h.service.EditEngineer(r.Context(), engineerID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /admin/engineers/{id} - Validation failed: id=%s, error=%v", engineerID, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("PUT /admin/engineers/{id} - Engineer not found: id=%s", engineerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/engineers/{id} - Failed to edit engineer: id=%s, error=%v", engineerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/engineers/{id} - Engineer updated: id=%s", engineer.ID)
	handlers.RespondJSON(w, http.StatusOK, engineer)
}
