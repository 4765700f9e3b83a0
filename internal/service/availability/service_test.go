package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSource struct {
	availability domain.CompanyAvailability
	err          error
}

func (f *fakeSource) CompanyAvailability(context.Context) (domain.CompanyAvailability, error) {
	return f.availability, f.err
}

func newTestService(schedule domain.ScheduleConfig) *Service {
	src := &fakeSource{availability: domain.NewCompanyAvailability(schedule, monday)}
	return NewService(src, time.UTC, nopLogger{}).WithTimeProvider(&fixedClock{now: monday})
}

func TestService_Slots(t *testing.T) {
	svc := newTestService(domain.DefaultScheduleConfig())
	ctx := context.Background()

	t.Run("available weekday", func(t *testing.T) {
		res, err := svc.Slots(ctx, "2025-03-11")
		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Len(t, res.Slots, 8)
	})

	t.Run("past date has no slots", func(t *testing.T) {
		res, err := svc.Slots(ctx, "2025-03-04")
		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Empty(t, res.Slots)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.Slots(ctx, "2025/03/11")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestService_UnavailableDates(t *testing.T) {
	svc := newTestService(domain.DefaultScheduleConfig())

	dates, err := svc.UnavailableDates(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-15", "2025-03-16"}, dates)

	_, err = svc.UnavailableDates(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestService_Calendar(t *testing.T) {
	svc := newTestService(domain.DefaultScheduleConfig())

	days, err := svc.Calendar(context.Background(), 2025, 2)
	require.NoError(t, err)
	assert.Len(t, days, 28)

	_, err = svc.Calendar(context.Background(), 2025, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestService_SourceError(t *testing.T) {
	svc := NewService(&fakeSource{err: errors.New("redis down")}, time.UTC, nopLogger{})

	_, err := svc.Slots(context.Background(), "2025-03-11")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_IsSlotBookable(t *testing.T) {
	svc := newTestService(domain.DefaultScheduleConfig())
	ctx := context.Background()

	ok, err := svc.IsSlotBookable(ctx, "2025-03-11", "09.00 - 10.00")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsSlotBookable(ctx, "2025-03-15", "09.00 - 10.00")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsSlotBookable(ctx, "2025-03-11", "17.00 - 18.00")
	require.NoError(t, err)
	assert.False(t, ok)
}
