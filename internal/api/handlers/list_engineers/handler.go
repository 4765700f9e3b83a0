package list_engineers

import (
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
)

const msgInvalidParams = "некорректные параметры запроса"

// ListEngineersQuery query параметры
type ListEngineersQuery struct {
	Active bool `schema:"active"`
}

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

// Handle GET /api/v1/admin/engineers
// Query params: active (опционально, true = только активные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var query ListEngineersQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /admin/engineers - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	engineers := h.service.ListEngineers(r.Context(), query.Active)
	handlers.RespondJSON(w, http.StatusOK, engineers)
}
