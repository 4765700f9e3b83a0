package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SIA-BookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

const body = `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","phone":"555",
"service":"Boundary Survey","date":"2025-03-11","time":"09.00 - 10.00","recaptchaToken":"tok"}`

func serve(t *testing.T, uc *fakeUseCase, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	req.RemoteAddr = "198.51.100.4:4000"
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		Appointment: &models.Appointment{
			ID: "appt-1", FirstName: "Ada", Status: domain.StatusPending,
			EngineerName: domain.UnassignedLabel, CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		Degraded: true,
		Warning:  "appointment saved, but the confirmation email could not be sent",
	}}

	rec := serve(t, uc, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "appt-1", resp.Appointment.ID)
	assert.True(t, resp.Degraded)
	assert.Equal(t, "tok", uc.got.VerificationToken)
	assert.Equal(t, "198.51.100.4", uc.got.RemoteIP)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("email", "must be a valid email address"), http.StatusUnprocessableEntity},
		{"slot", bookings.ErrSlotNotAvailable, http.StatusConflict},
		{"verification", createBooking.ErrVerificationFailed, http.StatusForbidden},
		{"maintenance", createBooking.ErrMaintenance, http.StatusServiceUnavailable},
		{"external", &domain.ExternalServiceError{Service: "recaptcha", Err: errors.New("timeout")}, http.StatusBadGateway},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(t, uc, `{"first_name": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
