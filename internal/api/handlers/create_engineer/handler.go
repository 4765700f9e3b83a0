package create_engineer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/admin/engineers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.EngineerInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/engineers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	engineer, err := h.service.AddEngineer(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /admin/engineers - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /admin/engineers - Failed to add engineer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/engineers - Engineer added: id=%s", engineer.ID)
	handlers.RespondJSON(w, http.StatusCreated, engineer)
}
