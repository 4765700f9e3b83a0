package create_booking

import (
	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

// Request модель запроса на создание записи
type Request struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	Service           string
	Date              string // YYYY-MM-DD
	Time              string // метка слота "HH.MM - HH.MM"
	VerificationToken string // токен reCAPTCHA
	RemoteIP          string
}

// Response результат создания записи.
// Degraded означает, что запись сохранена, но письмо не отправлено.
type Response struct {
	Appointment *models.Appointment
	Degraded    bool
	Warning     string
}

func (r *Request) draft() domain.AppointmentDraft {
	return domain.AppointmentDraft{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Service:   r.Service,
		Date:      r.Date,
		Time:      r.Time,
	}
}
