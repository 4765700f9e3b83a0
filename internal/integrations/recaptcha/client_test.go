package recaptcha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
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

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret-key", r.PostForm.Get("secret"))
		assert.Equal(t, "token-1", r.PostForm.Get("response"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{"success": true, "hostname": "localhost"}`)
		ok, err := NewClient(srv.URL, "secret-key", time.Second, nopLogger{}).Verify(ctx, "token-1", "")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejected", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{"success": false, "error-codes": ["invalid-input-response"]}`)
		ok, err := NewClient(srv.URL, "secret-key", time.Second, nopLogger{}).Verify(ctx, "token-1", "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("server error", func(t *testing.T) {
		srv := newServer(t, http.StatusInternalServerError, "oops")
		ok, err := NewClient(srv.URL, "secret-key", time.Second, nopLogger{}).Verify(ctx, "token-1", "")
		assert.False(t, ok)
		require.ErrorIs(t, err, domain.ErrExternalService)
		assert.ErrorIs(t, err, ErrInvalidResponse)

		var extErr *domain.ExternalServiceError
		require.True(t, errors.As(err, &extErr))
		assert.Equal(t, ServiceName, extErr.Service)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `not json`)
		_, err := NewClient(srv.URL, "secret-key", time.Second, nopLogger{}).Verify(ctx, "token-1", "")
		assert.ErrorIs(t, err, domain.ErrExternalService)
	})

	t.Run("empty token skips the call", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
		defer srv.Close()

		ok, err := NewClient(srv.URL, "secret-key", time.Second, nopLogger{}).Verify(ctx, "  ", "")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, called)
	})
}

func TestNopVerifier(t *testing.T) {
	ok, err := NopVerifier{}.Verify(context.Background(), "anything", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = NopVerifier{}.Verify(context.Background(), "", "")
	assert.False(t, ok)
}
