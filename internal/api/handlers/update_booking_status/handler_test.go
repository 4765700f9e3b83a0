package update_booking_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
	"github.com/m04kA/SIA-BookingService/internal/domain"
	"github.com/m04kA/SIA-BookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err    error
	calls  int
	status domain.AppointmentStatus
}

func (f *fakeService) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (*models.Appointment, error) {
	f.calls++
	f.status = status
	if f.err != nil {
		return nil, f.err
	}
	return &models.Appointment{ID: id, Status: status, CreatedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}, nil
}

func serve(svc *fakeService, payload string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/bookings/{bookingId}/status", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/appt-7/status", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Confirms(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "appt-7", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, svc.status)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		err       error
		want      int
		wantCalls int
	}{
		{"malformed body", `{`, nil, http.StatusBadRequest, 0},
		{"unknown status", `{"status":"archived"}`, nil, http.StatusUnprocessableEntity, 0},
		{"missing booking", `{"status":"cancelled"}`, &domain.NotFoundError{Entity: "appointment", ID: "appt-7"}, http.StatusNotFound, 1},
		{"terminal state", `{"status":"confirmed"}`, &domain.InvalidTransitionError{From: domain.StatusCancelled, To: domain.StatusConfirmed}, http.StatusConflict, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := serve(svc, tt.body)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
