package delete_engineer

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

// Handle DELETE /api/v1/admin/engineers/{engineerId}
// Назначения в записях не трогаются и показываются как "Unassigned"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	engineerID := mux.Vars(r)["engineerId"]

	if err := h.service.DeleteEngineer(r.Context(), engineerID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("DELETE /admin/engineers/{id} - Engineer not found: id=%s", engineerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/engineers/{id} - Failed to delete engineer: id=%s, error=%v", engineerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/engineers/{id} - Engineer deleted: id=%s", engineerID)
	w.WriteHeader(http.StatusNoContent)
}
