package update_booking_status

import "github.com/m04kA/SIA-BookingService/internal/domain"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToStatus разбирает статус; неизвестный статус даёт ValidationError
func (r *UpdateStatusRequest) ToStatus() (domain.AppointmentStatus, error) {
	return domain.ParseAppointmentStatus(r.Status)
}
