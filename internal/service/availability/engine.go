package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/pkg/types"
)

// Engine computes bookable dates and slots from a schedule.
// It never performs I/O; "today" comes from the injected clock in the
// business timezone.
type Engine struct {
	schedule domain.ScheduleConfig
	location *time.Location
	clock    TimeProvider
}

// NewEngine создает движок доступности поверх копии расписания
func NewEngine(schedule domain.ScheduleConfig, location *time.Location, clock TimeProvider) *Engine {
	if location == nil {
		location = time.Local
	}
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &Engine{
		schedule: schedule.Clone(),
		location: location,
		clock:    clock,
	}
}

// Today returns the current calendar date in the business timezone
func (e *Engine) Today() string {
	return domain.FormatDate(e.clock.Now().In(e.location))
}

// IsDateAvailable blocked dates are never available; otherwise the weekday
// template decides. A malformed date or a weekday missing from the template
// is unavailable.
func (e *Engine) IsDateAvailable(date string) bool {
	day, err := domain.ParseDate(date)
	if err != nil {
		return false
	}

	if e.schedule.IsBlocked(date) {
		return false
	}

	schedule, ok := e.schedule.WorkingHours[domain.WeekdayKey(day.Weekday())]
	if !ok {
		return false
	}
	return schedule.Available
}

// AvailableTimeSlots one-hour slots of an available date, empty otherwise
func (e *Engine) AvailableTimeSlots(date string) []string {
	if !e.IsDateAvailable(date) {
		return []string{}
	}

	day, _ := domain.ParseDate(date)
	schedule, ok := e.schedule.WorkingHours[domain.WeekdayKey(day.Weekday())]
	if !ok {
		return []string{}
	}

	return GenerateTimeSlots(schedule.Start, schedule.End)
}

// IsPast reports whether date is before today
func (e *Engine) IsPast(date string) bool {
	return date < e.Today()
}

// IsSlotBookable the date is not in the past, is available, and slot is one
// of the slots generated for it
func (e *Engine) IsSlotBookable(date, slot string) bool {
	if e.IsPast(date) {
		return false
	}
	for _, s := range e.AvailableTimeSlots(date) {
		if s == slot {
			return true
		}
	}
	return false
}

// UnavailableDates union of every blocked date and every unavailable date in
// [today, today+horizonDays). Sorted ascending, no duplicates.
func (e *Engine) UnavailableDates(horizonDays int) []string {
	if horizonDays < 0 {
		horizonDays = 0
	}

	seen := make(map[string]struct{})
	for _, b := range e.schedule.BlockedDates {
		seen[b.Date] = struct{}{}
	}

	today, _ := domain.ParseDate(e.Today())
	for i := 0; i < horizonDays; i++ {
		date := domain.FormatDate(today.AddDate(0, 0, i))
		if !e.IsDateAvailable(date) {
			seen[date] = struct{}{}
		}
	}

	result := make([]string, 0, len(seen))
	for date := range seen {
		result = append(result, date)
	}
	sort.Strings(result)
	return result
}

// GenerateTimeSlots partitions [start, end) into one-hour slots labelled
// "HH.MM - HH.MM". A slot is emitted only if its end does not pass end, so a
// trailing remainder shorter than an hour is dropped. start >= end or a
// malformed bound yields no slots.
func GenerateTimeSlots(start, end types.TimeString) []string {
	startMinutes, err := start.Minutes()
	if err != nil {
		return []string{}
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return []string{}
	}

	slots := make([]string, 0)
	for current := startMinutes; current < endMinutes; current += domain.SlotDurationMinutes {
		slotEnd := current + domain.SlotDurationMinutes
		if slotEnd > endMinutes {
			break
		}
		slots = append(slots, domain.FormatSlotLabel(current, slotEnd))
	}
	return slots
}
