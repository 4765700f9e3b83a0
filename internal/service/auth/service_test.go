package auth

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

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type fakeStore struct {
	creds     domain.Credentials
	prefs     domain.Preferences
	updateErr error
}

func (f *fakeStore) Credentials(context.Context) (domain.Credentials, error) {
	return f.creds, nil
}

func (f *fakeStore) Preferences(context.Context) (domain.Preferences, error) {
	return f.prefs, nil
}

func (f *fakeStore) UpdateCredentials(_ context.Context, creds domain.Credentials) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.creds = creds
	return nil
}

const testSecret = "test-secret"

func newTestService(t *testing.T) (*Service, *fakeStore, *fixedClock) {
	t.Helper()
	hash, err := HashPassword("password1")
	require.NoError(t, err)

	store := &fakeStore{
		creds: domain.Credentials{Username: "admin", PasswordHash: hash},
		prefs: domain.Preferences{SessionTimeoutMinutes: 30},
	}
	clock := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	return NewService(store, testSecret, nopLogger{}).WithTimeProvider(clock), store, clock
}

func TestService_Authenticate(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		session, err := svc.Authenticate(ctx, "admin", "password1")
		require.NoError(t, err)
		assert.Equal(t, "admin", session.Username)
		assert.NotEmpty(t, session.Token)
		assert.True(t, session.ExpiresAt.Equal(clock.now.Add(30*time.Minute)))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "admin", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "root", "password1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ValidateToken(t *testing.T) {
	svc, _, clock := newTestService(t)
	ctx := context.Background()

	session, err := svc.Authenticate(ctx, "admin", "password1")
	require.NoError(t, err)

	username, err := svc.ValidateToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewService(&fakeStore{}, "another-secret", nopLogger{}).WithTimeProvider(clock)
		_, err := other.ValidateToken(ctx, session.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewService(&fakeStore{}, testSecret, nopLogger{}).
			WithTimeProvider(&fixedClock{now: clock.now.Add(31 * time.Minute)})
		_, err := late.ValidateToken(ctx, session.Token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		require.NoError(t, svc.ChangePassword(ctx, "password1", "newpassword", "newpassword"))
		assert.True(t, CheckPassword(store.creds.PasswordHash, "newpassword"))
		assert.Equal(t, "admin", store.creds.Username)

		_, err := svc.Authenticate(ctx, "admin", "newpassword")
		assert.NoError(t, err)
	})

	t.Run("all rules reported", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		before := store.creds

		err := svc.ChangePassword(ctx, "wrong", "short", "other")
		require.ErrorIs(t, err, domain.ErrValidation)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.ElementsMatch(t, []string{"currentPassword", "newPassword", "confirmPassword"}, verr.FieldNames())
		assert.Equal(t, before, store.creds)
	})

	t.Run("persist failure", func(t *testing.T) {
		svc, store, _ := newTestService(t)
		store.updateErr = errors.New("boom")
		err := svc.ChangePassword(ctx, "password1", "newpassword", "newpassword")
		assert.ErrorIs(t, err, ErrInternal)
	})
}
