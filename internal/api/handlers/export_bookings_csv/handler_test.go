package export_bookings_csv

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	csv string
	err error
}

func (f fakeUseCase) WriteBookingsCSV(_ context.Context, w io.Writer) error {
	_, _ = io.WriteString(w, f.csv)
	return f.err
}

func TestHandler_WritesAttachment(t *testing.T) {
	uc := fakeUseCase{csv: "Name,Email,Phone,Service,Date,Time,Status,Engineer\n"}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/export/bookings.csv", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bookings.csv")
	assert.Equal(t, uc.csv, rec.Body.String())
}

func TestHandler_FailureDropsPartialOutput(t *testing.T) {
	uc := fakeUseCase{csv: "Name,Email", err: errors.New("disk")}
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/export/bookings.csv", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Name,Email")
}
