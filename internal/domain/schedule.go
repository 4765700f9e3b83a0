package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SIA-BookingService/pkg/types"
)

// DaySchedule working hours of one weekday
type DaySchedule struct {
	Start     types.TimeString `json:"start"`
	End       types.TimeString `json:"end"`
	Available bool             `json:"available"`
}

// WorkingHours weekly template keyed by weekday ("monday" ... "sunday")
type WorkingHours map[string]DaySchedule

// BlockedDate a single date closed for booking
type BlockedDate struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

// ScheduleConfig weekly working hours plus ad hoc blocked dates.
// Duplicate blocked dates are allowed; any match blocks the date.
type ScheduleConfig struct {
	WorkingHours WorkingHours  `json:"workingHours"`
	BlockedDates []BlockedDate `json:"blockedDates"`
}

// DefaultWorkingHours Mon-Fri 09:00-17:00, Saturday and Sunday closed
func DefaultWorkingHours() WorkingHours {
	weekday := DaySchedule{Start: "09:00", End: "17:00", Available: true}
	return WorkingHours{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekday,
		"saturday":  {Start: "09:00", End: "12:00", Available: false},
		"sunday":    {Start: "00:00", End: "00:00", Available: false},
	}
}

// DefaultScheduleConfig schedule used on first start
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		WorkingHours: DefaultWorkingHours(),
		BlockedDates: []BlockedDate{},
	}
}

// Validate checks that every weekday is present exactly once and that
// available days have start <= end
func (w WorkingHours) Validate() error {
	verr := &ValidationError{}

	known := make(map[string]struct{}, len(Weekdays))
	for _, day := range Weekdays {
		known[day] = struct{}{}

		schedule, ok := w[day]
		if !ok {
			verr.Add(day, "missing weekday")
			continue
		}
		// hours of an unavailable day are ignored
		if !schedule.Available {
			continue
		}
		if err := schedule.Start.Validate(); err != nil {
			verr.Add(day+".start", "expected HH:MM")
			continue
		}
		if err := schedule.End.Validate(); err != nil {
			verr.Add(day+".end", "expected HH:MM")
			continue
		}
		if schedule.Start.IsAfter(schedule.End) {
			verr.Add(day, "start must not be after end")
		}
	}

	for day := range w {
		if _, ok := known[day]; !ok {
			verr.Add(day, "unknown weekday")
		}
	}

	return verr.Err()
}

// Clone returns a deep copy
func (w WorkingHours) Clone() WorkingHours {
	out := make(WorkingHours, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// Validate checks the date format
func (b BlockedDate) Validate() error {
	if _, err := ParseDate(b.Date); err != nil {
		return NewValidationError("date", "expected YYYY-MM-DD")
	}
	return nil
}

// IsBlocked reports whether date (YYYY-MM-DD) matches any blocked entry
func (s ScheduleConfig) IsBlocked(date string) bool {
	for _, b := range s.BlockedDates {
		if b.Date == date {
			return true
		}
	}
	return false
}

// Clone returns a deep copy
func (s ScheduleConfig) Clone() ScheduleConfig {
	blocked := make([]BlockedDate, len(s.BlockedDates))
	copy(blocked, s.BlockedDates)
	return ScheduleConfig{
		WorkingHours: s.WorkingHours.Clone(),
		BlockedDates: blocked,
	}
}

// Validate checks working hours and every blocked date
func (s ScheduleConfig) Validate() error {
	if err := s.WorkingHours.Validate(); err != nil {
		return err
	}
	for i, b := range s.BlockedDates {
		if err := b.Validate(); err != nil {
			return NewValidationError(fmt.Sprintf("blockedDates[%d].date", i), "expected YYYY-MM-DD")
		}
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date. The result is midnight UTC and
// only its calendar fields are meaningful.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateFormat, date)
}

// FormatDate formats the calendar date of t in t's own location
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
