package handlers

import (
	"time"

	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

// AppointmentResponse запись на приём в HTTP ответе
type AppointmentResponse struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Service      string  `json:"service"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Status       string  `json:"status"`
	EngineerID   string  `json:"engineerId,omitempty"`
	EngineerName string  `json:"engineerName"`
	CreatedAt    string  `json:"createdAt"`
	ConfirmedAt  *string `json:"confirmedAt,omitempty"`
}

// NewAppointmentResponse конвертирует модель сервиса в HTTP ответ
func NewAppointmentResponse(a *models.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		Phone:        a.Phone,
		Service:      a.Service,
		Date:         a.Date,
		Time:         a.Time,
		Status:       string(a.Status),
		EngineerID:   a.EngineerID,
		EngineerName: a.EngineerName,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
	}
	if a.ConfirmedAt != nil {
		confirmed := a.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmed
	}
	return resp
}

// NewAppointmentListResponse конвертирует список записей
func NewAppointmentListResponse(list []*models.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, NewAppointmentResponse(a))
	}
	return out
}
