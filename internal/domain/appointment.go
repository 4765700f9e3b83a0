package domain

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// allowedTransitions pending -> confirmed|cancelled, confirmed -> cancelled
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// CanTransitionTo returns true if the lifecycle allows moving from s to next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseAppointmentStatus converts a raw value into a status
func ParseAppointmentStatus(raw string) (AppointmentStatus, error) {
	status := AppointmentStatus(raw)
	if !status.IsValid() {
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", raw))
	}
	return status, nil
}

// Appointment a client booking request
type Appointment struct {
	ID          string            `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Service     string            `json:"service"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // slot label "HH.MM - HH.MM"
	Status      AppointmentStatus `json:"status"`
	Engineer    string            `json:"engineer,omitempty"` // Engineer.ID, may dangle
	CreatedAt   time.Time         `json:"createdAt"`
	ConfirmedAt *time.Time        `json:"confirmedAt,omitempty"`
}

// AppointmentDraft contact and slot fields submitted by a client
type AppointmentDraft struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Service   string `json:"service" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required"`
}

// NewAppointment builds a pending appointment from a validated draft
func NewAppointment(id string, draft AppointmentDraft, now time.Time) *Appointment {
	return &Appointment{
		ID:        id,
		FirstName: draft.FirstName,
		LastName:  draft.LastName,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Service:   draft.Service,
		Date:      draft.Date,
		Time:      draft.Time,
		Status:    StatusPending,
		CreatedAt: now,
	}
}

// TransitionTo moves the appointment to next, stamping ConfirmedAt on confirmation
func (a *Appointment) TransitionTo(next AppointmentStatus, now time.Time) error {
	if !a.Status.CanTransitionTo(next) {
		return &InvalidTransitionError{From: a.Status, To: next}
	}
	a.Status = next
	if next == StatusConfirmed {
		confirmedAt := now
		a.ConfirmedAt = &confirmedAt
	}
	return nil
}

// Clone returns a copy that shares no pointers with a
func (a *Appointment) Clone() *Appointment {
	out := *a
	if a.ConfirmedAt != nil {
		t := *a.ConfirmedAt
		out.ConfirmedAt = &t
	}
	return &out
}

// AppointmentFilter optional filters; empty fields match everything
type AppointmentFilter struct {
	Status       string `schema:"status"`
	Service      string `schema:"service"`
	Date         string `schema:"date"`
	EngineerName string `schema:"engineer"`
}
