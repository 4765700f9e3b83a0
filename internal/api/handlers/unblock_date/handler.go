package unblock_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const (
	msgInvalidIndex = "некорректный индекс"
	msgNotFound     = "заблокированная дата не найдена"
)

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

// Handle DELETE /api/v1/admin/schedule/blocked-dates/{index}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		h.logger.Warn("DELETE /admin/schedule/blocked-dates/{index} - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	schedule, err := h.service.UnblockDate(r.Context(), index)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("DELETE /admin/schedule/blocked-dates/{index} - Not found: index=%d", index)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/schedule/blocked-dates/{index} - Failed: index=%d, error=%v", index, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/schedule/blocked-dates/{index} - Date unblocked: index=%d", index)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
