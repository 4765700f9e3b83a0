package create_booking

import (
	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/integrations/mailer"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

// confirmationMessages письмо клиенту и копия администратору.
// Копия не отправляется, если адрес администратора совпадает с адресом клиента или пуст.
func confirmationMessages(appt *models.Appointment, profile domain.CompanyProfile, adminEmail string) ([]mailer.Message, error) {
	data := mailer.Confirmation{
		FirstName:    appt.FirstName,
		LastName:     appt.LastName,
		Email:        appt.Email,
		Phone:        appt.Phone,
		Service:      appt.Service,
		Date:         appt.Date,
		Time:         appt.Time,
		CompanyName:  profile.CompanyName,
		CompanyEmail: profile.Email,
		CompanyPhone: profile.Phone,
	}

	recipients := []string{appt.Email}
	if adminEmail != "" && adminEmail != appt.Email {
		recipients = append(recipients, adminEmail)
	}

	messages := make([]mailer.Message, 0, len(recipients))
	for _, to := range recipients {
		msg, err := mailer.BuildConfirmation(to, data)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
