package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/integrations/mailer"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookings struct {
	validateErr error
	created     []*models.Appointment
	confirmed   []string
}

func (f *fakeBookings) ValidateDraft(_ context.Context, d domain.AppointmentDraft) (domain.AppointmentDraft, error) {
	return domain.TrimDraft(d), f.validateErr
}

func (f *fakeBookings) Create(_ context.Context, d domain.AppointmentDraft) (*models.Appointment, error) {
	appt := models.FromDomainAppointment(domain.NewAppointment("appt-1", d, time.Now()), domain.UnassignedLabel)
	f.created = append(f.created, appt)
	return appt, nil
}

func (f *fakeBookings) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (*models.Appointment, error) {
	f.confirmed = append(f.confirmed, id)
	appt := *f.created[len(f.created)-1]
	appt.Status = status
	return &appt, nil
}

type fakeSettings struct {
	prefs domain.Preferences
}

func (f *fakeSettings) Preferences(context.Context) (domain.Preferences, error) { return f.prefs, nil }

func (f *fakeSettings) Profile(context.Context) (domain.CompanyProfile, error) {
	return domain.CompanyProfile{CompanyName: "Survey Services", Email: "office@example.com", Phone: "555"}, nil
}

type fakeVerifier struct {
	ok    bool
	err   error
	calls int
}

func (f *fakeVerifier) Verify(context.Context, string, string) (bool, error) {
	f.calls++
	return f.ok, f.err
}

type fakeNotifier struct {
	failFor map[string]bool
	sent    []mailer.Message
}

func (f *fakeNotifier) Send(_ context.Context, msg mailer.Message) error {
	if f.failFor[msg.To] {
		return &domain.ExternalServiceError{Service: mailer.ServiceName, Err: errors.New("smtp down")}
	}
	f.sent = append(f.sent, msg)
	return nil
}

type countingMetrics struct {
	created, notifyFailed, verifyFailed int
}

func (m *countingMetrics) BookingCreated(string)     { m.created++ }
func (m *countingMetrics) NotificationFailed(string) { m.notifyFailed++ }
func (m *countingMetrics) VerificationFailed()       { m.verifyFailed++ }

type fixture struct {
	bookings *fakeBookings
	settings *fakeSettings
	verifier *fakeVerifier
	notifier *fakeNotifier
	metrics  *countingMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookings{},
		settings: &fakeSettings{prefs: domain.DefaultPreferences()},
		verifier: &fakeVerifier{ok: true},
		notifier: &fakeNotifier{failFor: map[string]bool{}},
		metrics:  &countingMetrics{},
	}
	f.uc = NewUseCase(f.bookings, f.settings, f.verifier, f.notifier, "admin@example.com", nopLogger{}).
		WithMetrics(f.metrics)
	return f
}

func validRequest() *Request {
	return &Request{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		Email:             "ada@example.com",
		Phone:             "555-0100",
		Service:           "Boundary Survey",
		Date:              "2025-03-11",
		Time:              "09.00 - 10.00",
		VerificationToken: "token",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	assert.Equal(t, domain.StatusPending, resp.Appointment.Status)

	require.Len(t, f.notifier.sent, 2)
	assert.Equal(t, "ada@example.com", f.notifier.sent[0].To)
	assert.Equal(t, "admin@example.com", f.notifier.sent[1].To)
	assert.Equal(t, f.notifier.sent[0].HTMLBody, f.notifier.sent[1].HTMLBody)
	assert.Equal(t, 1, f.metrics.created)
}

func TestUseCase_Execute_VerificationAbortsBeforePersisting(t *testing.T) {
	t.Run("rejected token", func(t *testing.T) {
		f := newFixture()
		f.verifier.ok = false

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrVerificationFailed)
		assert.Empty(t, f.bookings.created)
		assert.Empty(t, f.notifier.sent)
		assert.Equal(t, 1, f.metrics.verifyFailed)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newFixture()
		req := validRequest()
		req.VerificationToken = ""

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrVerificationFailed)
		assert.Zero(t, f.verifier.calls)
		assert.Empty(t, f.bookings.created)
	})

	t.Run("verification service down", func(t *testing.T) {
		f := newFixture()
		f.verifier.err = &domain.ExternalServiceError{Service: "recaptcha", Err: errors.New("timeout")}

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, domain.ErrExternalService)
		assert.Empty(t, f.bookings.created)
	})
}

func TestUseCase_Execute_ValidationSkipsVerification(t *testing.T) {
	f := newFixture()
	f.bookings.validateErr = domain.NewValidationError("email", "must be a valid email address")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, f.verifier.calls)
	assert.Empty(t, f.bookings.created)
}

func TestUseCase_Execute_NotificationFailureIsDegraded(t *testing.T) {
	f := newFixture()
	f.notifier.failFor["ada@example.com"] = true

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.NotEmpty(t, resp.Warning)
	assert.Len(t, f.bookings.created, 1)
	assert.Equal(t, 1, f.metrics.notifyFailed)
}

func TestUseCase_Execute_Preferences(t *testing.T) {
	t.Run("maintenance mode", func(t *testing.T) {
		f := newFixture()
		f.settings.prefs.MaintenanceMode = true

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrMaintenance)
		assert.Zero(t, f.verifier.calls)
	})

	t.Run("notifications disabled", func(t *testing.T) {
		f := newFixture()
		f.settings.prefs.EmailNotifications = false

		resp, err := f.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.False(t, resp.Degraded)
		assert.Empty(t, f.notifier.sent)
	})

	t.Run("auto confirm", func(t *testing.T) {
		f := newFixture()
		f.settings.prefs.AutoConfirm = true

		resp, err := f.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, resp.Appointment.Status)
		assert.Equal(t, []string{"appt-1"}, f.bookings.confirmed)
	})
}

func TestUseCase_Execute_AdminCopyFallsBackToProfile(t *testing.T) {
	f := newFixture()
	f.uc.adminEmail = ""

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, f.notifier.sent, 2)
	assert.Equal(t, "office@example.com", f.notifier.sent[1].To)
}
