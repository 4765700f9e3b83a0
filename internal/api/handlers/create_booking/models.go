package create_booking

import (
	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SIA-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Service        string `json:"service"`
	Date           string `json:"date"` // "2025-10-15"
	Time           string `json:"time"` // "09.00 - 10.00"
	RecaptchaToken string `json:"recaptchaToken"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Appointment *handlers.AppointmentResponse `json:"appointment"`
	Degraded    bool                          `json:"degraded"`
	Warning     string                        `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(remoteIP string) *createBooking.Request {
	return &createBooking.Request{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Email:             r.Email,
		Phone:             r.Phone,
		Service:           r.Service,
		Date:              r.Date,
		Time:              r.Time,
		VerificationToken: r.RecaptchaToken,
		RemoteIP:          remoteIP,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Appointment: handlers.NewAppointmentResponse(resp.Appointment),
		Degraded:    resp.Degraded,
		Warning:     resp.Warning,
	}
}
