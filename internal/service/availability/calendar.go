package availability

import (
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// DayState how a calendar cell is rendered
type DayState string

const (
	DayPast        DayState = "past"
	DayUnavailable DayState = "unavailable"
	DayToday       DayState = "today"
	DayAvailable   DayState = "available"
)

// CalendarDay one day of a month view
type CalendarDay struct {
	Date       string
	Day        int
	Weekday    string
	State      DayState
	Selectable bool
}

// Month builds the month view. State precedence is past, unavailable,
// today, available; a day is selectable when it is neither past nor
// unavailable.
func (e *Engine) Month(year int, month time.Month) []CalendarDay {
	today := e.Today()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := domain.FormatDate(d)
		past := date < today
		available := e.IsDateAvailable(date)

		state := DayAvailable
		switch {
		case past:
			state = DayPast
		case !available:
			state = DayUnavailable
		case date == today:
			state = DayToday
		}

		days = append(days, CalendarDay{
			Date:       date,
			Day:        d.Day(),
			Weekday:    domain.WeekdayKey(d.Weekday()),
			State:      state,
			Selectable: !past && available,
		})
	}
	return days
}
