package change_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/api/middleware"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const msgInvalidRequestBody = "некорректное тело запроса"

// ChangePasswordRequest HTTP request model
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.GetUsername(r.Context())

	var req ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /admin/settings/password - Rejected for %q: %v", username, err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("PUT /admin/settings/password - Failed for %q: %v", username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/settings/password - Password changed for %q", username)
	w.WriteHeader(http.StatusNoContent)
}
