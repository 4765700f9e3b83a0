package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSlotLabel renders minutes-since-midnight bounds as "HH.MM - HH.MM"
func FormatSlotLabel(startMinutes, endMinutes int) string {
	return formatSlotClock(startMinutes) + SlotLabelSeparator + formatSlotClock(endMinutes)
}

func formatSlotClock(minutes int) string {
	return fmt.Sprintf("%02d.%02d", minutes/60, minutes%60)
}

// ParseSlotLabel returns the bounds of a "HH.MM - HH.MM" label in minutes
func ParseSlotLabel(label string) (startMinutes, endMinutes int, err error) {
	parts := strings.Split(label, SlotLabelSeparator)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: slot label %q", ErrValidation, label)
	}
	if startMinutes, err = parseSlotClock(parts[0]); err != nil {
		return 0, 0, err
	}
	if endMinutes, err = parseSlotClock(parts[1]); err != nil {
		return 0, 0, err
	}
	return startMinutes, endMinutes, nil
}

func parseSlotClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ".")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: slot clock %q", ErrValidation, s)
	}
	h, errH := strconv.Atoi(hh)
	m, errM := strconv.Atoi(mm)
	if errH != nil || errM != nil || h < 0 || h > 24 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: slot clock %q", ErrValidation, s)
	}
	return h*60 + m, nil
}
