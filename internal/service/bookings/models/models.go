package models

import (
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// Appointment запись на приём с разрешённым именем инженера
type Appointment struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Service      string
	Date         string
	Time         string
	Status       domain.AppointmentStatus
	EngineerID   string
	EngineerName string // "Unassigned", если инженер не назначен или удалён
	CreatedAt    time.Time
	ConfirmedAt  *time.Time
}

// FullName returns "First Last"
func (a *Appointment) FullName() string {
	return a.FirstName + " " + a.LastName
}

// FromDomainAppointment конвертирует доменную запись в модель ответа
func FromDomainAppointment(a *domain.Appointment, engineerName string) *Appointment {
	out := &Appointment{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		Phone:        a.Phone,
		Service:      a.Service,
		Date:         a.Date,
		Time:         a.Time,
		Status:       a.Status,
		EngineerID:   a.Engineer,
		EngineerName: engineerName,
		CreatedAt:    a.CreatedAt,
	}
	if a.ConfirmedAt != nil {
		t := *a.ConfirmedAt
		out.ConfirmedAt = &t
	}
	return out
}

// Stats сводка для панели администратора
type Stats struct {
	Total           int
	Pending         int
	Confirmed       int
	Cancelled       int
	ActiveEngineers int
	ByService       map[string]int
	ByStatus        map[string]int
	TodaySchedule   []*Appointment
	Recent          []*Appointment
}
