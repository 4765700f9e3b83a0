package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScheduleConfig(t *testing.T) {
	cfg := DefaultScheduleConfig()

	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.WorkingHours, 7)
	assert.True(t, cfg.WorkingHours["monday"].Available)
	assert.False(t, cfg.WorkingHours["saturday"].Available)
	assert.False(t, cfg.WorkingHours["sunday"].Available)
	assert.Empty(t, cfg.BlockedDates)
}

func TestWorkingHours_Validate(t *testing.T) {
	t.Run("missing weekday", func(t *testing.T) {
		wh := DefaultWorkingHours()
		delete(wh, "friday")

		err := wh.Validate()
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"friday"}, verr.FieldNames())
	})

	t.Run("unknown weekday", func(t *testing.T) {
		wh := DefaultWorkingHours()
		wh["funday"] = DaySchedule{Start: "09:00", End: "10:00"}
		assert.ErrorIs(t, wh.Validate(), ErrValidation)
	})

	t.Run("start after end on available day", func(t *testing.T) {
		wh := DefaultWorkingHours()
		wh["monday"] = DaySchedule{Start: "18:00", End: "09:00", Available: true}
		assert.ErrorIs(t, wh.Validate(), ErrValidation)
	})

	t.Run("ordering ignored on unavailable day", func(t *testing.T) {
		wh := DefaultWorkingHours()
		wh["sunday"] = DaySchedule{Start: "18:00", End: "09:00", Available: false}
		assert.NoError(t, wh.Validate())
	})

	t.Run("malformed time", func(t *testing.T) {
		wh := DefaultWorkingHours()
		wh["tuesday"] = DaySchedule{Start: "nine", End: "17:00", Available: true}
		assert.ErrorIs(t, wh.Validate(), ErrValidation)
	})

	t.Run("malformed time ignored on unavailable day", func(t *testing.T) {
		wh := DefaultWorkingHours()
		wh["saturday"] = DaySchedule{Start: "nine", End: "", Available: false}
		assert.NoError(t, wh.Validate())
	})
}

func TestScheduleConfig_IsBlocked(t *testing.T) {
	cfg := DefaultScheduleConfig()
	cfg.BlockedDates = []BlockedDate{
		{Date: "2025-12-25", Reason: "Christmas"},
		{Date: "2025-12-25", Reason: "duplicate"},
	}

	assert.True(t, cfg.IsBlocked("2025-12-25"))
	assert.False(t, cfg.IsBlocked("2025-12-26"))
}

func TestScheduleConfig_Clone(t *testing.T) {
	cfg := DefaultScheduleConfig()
	cfg.BlockedDates = append(cfg.BlockedDates, BlockedDate{Date: "2025-01-01"})

	c := cfg.Clone()
	c.WorkingHours["monday"] = DaySchedule{Start: "10:00", End: "11:00", Available: true}
	c.BlockedDates[0].Reason = "changed"

	assert.Equal(t, "09:00", cfg.WorkingHours["monday"].Start.String())
	assert.Empty(t, cfg.BlockedDates[0].Reason)
}

func TestWeekdayKey(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // Monday
	for i, want := range Weekdays {
		assert.Equal(t, want, WeekdayKey(date.AddDate(0, 0, i).Weekday()))
	}
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "09.00 - 10.00", FormatSlotLabel(9*60, 10*60))
	assert.Equal(t, "16.30 - 17.30", FormatSlotLabel(16*60+30, 17*60+30))

	start, end, err := ParseSlotLabel("09.00 - 10.00")
	require.NoError(t, err)
	assert.Equal(t, 540, start)
	assert.Equal(t, 600, end)

	_, _, err = ParseSlotLabel("09:00 - 10:00")
	assert.ErrorIs(t, err, ErrValidation)
}
