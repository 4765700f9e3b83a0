package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/api/middleware"
	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings"
	createBooking "github.com/m04kA/SIA-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlotNotAvailable   = "выбранная дата или время недоступны"
	msgVerificationFailed = "проверка reCAPTCHA не пройдена"
	msgMaintenance        = "запись временно недоступна"
	msgExternalService    = "сервис проверки временно недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(middleware.ClientIP(r)))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: email=%s, error=%v", req.Email, err)
			handlers.RespondValidationError(w, err)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrVerificationFailed):
			h.logger.Warn("POST /bookings - Verification failed: email=%s", req.Email)
			handlers.RespondForbidden(w, msgVerificationFailed)

		case errors.Is(err, createBooking.ErrMaintenance):
			h.logger.Warn("POST /bookings - Maintenance mode")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgMaintenance)

		case errors.Is(err, domain.ErrExternalService):
			h.logger.Error("POST /bookings - External service failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgExternalService)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Degraded {
		h.logger.Warn("POST /bookings - Booking created without notification: id=%s", result.Appointment.ID)
	} else {
		h.logger.Info("POST /bookings - Booking created successfully: id=%s", result.Appointment.ID)
	}
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
