package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyUpdate        = "нужно передать profile и/или preferences"
)

// UpdateSettingsRequest HTTP request model; отсутствующая секция не меняется
type UpdateSettingsRequest struct {
	Profile     *domain.CompanyProfile `json:"profile"`
	Preferences *domain.Preferences    `json:"preferences"`
}

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

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Profile == nil && req.Preferences == nil {
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}

	var err error
	if req.Profile != nil {
		_, err = h.service.UpdateProfile(r.Context(), *req.Profile)
	}
	if err == nil && req.Preferences != nil {
		_, err = h.service.UpdatePreferences(r.Context(), *req.Preferences)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /admin/settings - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	settings, err := h.service.Settings(r.Context())
	if err != nil {
		h.logger.Error("PUT /admin/settings - Failed to reload settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/settings - Settings updated (profile=%t, preferences=%t)",
		req.Profile != nil, req.Preferences != nil)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewSettingsResponse(settings))
}
