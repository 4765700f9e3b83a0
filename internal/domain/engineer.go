package domain

import (
	"fmt"
	"time"
)

// EngineerStatus availability of an engineer for assignment
type EngineerStatus string

const (
	EngineerActive   EngineerStatus = "active"
	EngineerInactive EngineerStatus = "inactive"
)

// Engineer a staff member that can be assigned to appointments
type Engineer struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Specialization string         `json:"specialization"`
	Address        string         `json:"address"`
	Status         EngineerStatus `json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// EngineerInput editable engineer fields
type EngineerInput struct {
	Name           string         `json:"name" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	Phone          string         `json:"phone" validate:"required"`
	Specialization string         `json:"specialization"`
	Address        string         `json:"address"`
	Status         EngineerStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// IsActive returns true if the engineer may be assigned
func (e *Engineer) IsActive() bool {
	return e.Status == EngineerActive
}

// Apply overwrites editable fields; the id is never touched
func (e *Engineer) Apply(in EngineerInput) {
	e.Name = in.Name
	e.Email = in.Email
	e.Phone = in.Phone
	e.Specialization = in.Specialization
	e.Address = in.Address
	if in.Status != "" {
		e.Status = in.Status
	}
}

// NewEngineerID "ENG" followed by the last six digits of the unix millisecond clock
func NewEngineerID(now time.Time) string {
	return fmt.Sprintf("%s%06d", EngineerIDPrefix, now.UnixMilli()%1_000_000)
}
