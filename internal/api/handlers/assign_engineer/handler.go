package assign_engineer

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingEngineerID  = "ID инженера обязателен"
	msgNotFound           = "запись или активный инженер не найдены"
)

// AssignEngineerRequest HTTP request model
type AssignEngineerRequest struct {
	EngineerID string `json:"engineerId"`
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/engineer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req AssignEngineerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/engineer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if strings.TrimSpace(req.EngineerID) == "" {
		handlers.RespondBadRequest(w, msgMissingEngineerID)
		return
	}

	appt, err := h.service.AssignEngineer(r.Context(), bookingID, req.EngineerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/engineer - Not found: id=%s, engineer=%s, error=%v",
				bookingID, req.EngineerID, err)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/engineer - Failed to assign: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/engineer - Engineer assigned: id=%s, engineer=%s", bookingID, appt.EngineerName)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewAppointmentResponse(appt))
}
