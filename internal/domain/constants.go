package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot and calendar constants
const (
	SlotDurationMinutes = 60
	SlotLabelSeparator  = " - "
	DefaultHorizonDays  = 180
	MaxHorizonDays      = 730 // 2 years
)

// Admin constants
const (
	MinPasswordLength            = 8
	DefaultSessionTimeoutMinutes = 480 // 8 hours
	EngineerIDPrefix             = "ENG"
	UnassignedLabel              = "Unassigned"
)

// Defaults of the company profile on first start
const (
	DefaultCompanyName    = "Samal Land Surveying"
	DefaultCompanyEmail   = "info@samalsurveying.com"
	DefaultCompanyPhone   = "+63 912 345 6789"
	DefaultCompanyAddress = "Samal, Davao del Norte, Philippines"
)

// Weekdays lists schedule keys in calendar order starting from Monday
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WeekdayKey returns the schedule key of a weekday ("monday", ...)
func WeekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
