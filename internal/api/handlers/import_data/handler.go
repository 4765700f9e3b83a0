package import_data

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
	exportData "github.com/m04kA/SIA-BookingService/internal/usecase/export_data"
)

const msgInvalidRequestBody = "некорректный файл выгрузки"

// ImportResponse HTTP response model
type ImportResponse struct {
	Appointments int `json:"appointments"`
	Engineers    int `json:"engineers"`
}

type Handler struct {
	useCase ImportUseCase
	logger  Logger
}

func NewHandler(useCase ImportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/import
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var data exportData.Export
	if err := handlers.DecodeJSON(r, &data); err != nil {
		h.logger.Warn("POST /admin/import - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.useCase.Import(r.Context(), &data); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /admin/import - Validation failed: %v", err)
			handlers.RespondValidationError(w, err)

		default:
			h.logger.Error("POST /admin/import - Failed to import data: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/import - Imported %d appointments, %d engineers", len(data.Appointments), len(data.Engineers))
	handlers.RespondJSON(w, http.StatusOK, ImportResponse{
		Appointments: len(data.Appointments),
		Engineers:    len(data.Engineers),
	})
}
