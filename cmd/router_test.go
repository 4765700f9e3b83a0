package main

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "Bearer good"

// stubHandlers answers every route with the name of its handler field
func stubHandlers() routeHandlers {
	var h routeHandlers
	v := reflect.ValueOf(&h).Elem()
	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Name
		v.Field(i).Set(reflect.ValueOf(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-Handler", name)
			w.WriteHeader(http.StatusOK)
		})))
	}
	return h
}

func stubMiddleware() routerMiddleware {
	return routerMiddleware{
		Auth: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != testToken {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r)
			})
		},
		RateLimit: func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Rate-Limited", "1")
				next.ServeHTTP(w, r)
			})
		},
	}
}

type routeCase struct {
	method  string
	path    string
	handler string
	admin   bool
	limited bool
}

var routeCases = []routeCase{
	{http.MethodGet, "/health/live", "Live", false, false},
	{http.MethodGet, "/health/ready", "Ready", false, false},

	{http.MethodGet, "/api/v1/availability", "GetAvailability", false, false},
	{http.MethodGet, "/api/v1/availability/slots", "GetAvailableSlots", false, false},
	{http.MethodGet, "/api/v1/availability/unavailable-dates", "GetUnavailableDates", false, false},
	{http.MethodGet, "/api/v1/availability/calendar", "GetCalendar", false, false},
	{http.MethodPost, "/api/v1/bookings", "CreateBooking", false, true},
	{http.MethodPost, "/api/v1/admin/login", "Login", false, true},

	{http.MethodGet, "/api/v1/admin/bookings", "GetBookings", true, false},
	{http.MethodGet, "/api/v1/admin/bookings/appt-1", "GetBooking", true, false},
	{http.MethodPatch, "/api/v1/admin/bookings/appt-1/status", "UpdateBookingStatus", true, false},
	{http.MethodPatch, "/api/v1/admin/bookings/appt-1/engineer", "AssignEngineer", true, false},

	{http.MethodGet, "/api/v1/admin/engineers", "ListEngineers", true, false},
	{http.MethodPost, "/api/v1/admin/engineers", "CreateEngineer", true, false},
	{http.MethodGet, "/api/v1/admin/engineers/ENG000001", "GetEngineer", true, false},
	{http.MethodPut, "/api/v1/admin/engineers/ENG000001", "UpdateEngineer", true, false},
	{http.MethodDelete, "/api/v1/admin/engineers/ENG000001", "DeleteEngineer", true, false},

	{http.MethodGet, "/api/v1/admin/schedule", "GetSchedule", true, false},
	{http.MethodPut, "/api/v1/admin/schedule/working-hours", "UpdateWorkingHours", true, false},
	{http.MethodPost, "/api/v1/admin/schedule/blocked-dates", "BlockDate", true, false},
	{http.MethodDelete, "/api/v1/admin/schedule/blocked-dates/0", "UnblockDate", true, false},

	{http.MethodGet, "/api/v1/admin/settings", "GetSettings", true, false},
	{http.MethodPut, "/api/v1/admin/settings", "UpdateSettings", true, false},
	{http.MethodPut, "/api/v1/admin/settings/password", "ChangePassword", true, false},

	{http.MethodGet, "/api/v1/admin/stats", "GetStats", true, false},
	{http.MethodGet, "/api/v1/admin/export", "ExportData", true, false},
	{http.MethodGet, "/api/v1/admin/export/bookings.csv", "ExportBookingsCSV", true, false},
	{http.MethodPost, "/api/v1/admin/import", "ImportData", true, false},
	{http.MethodPost, "/api/v1/admin/backup", "CreateBackup", true, false},
}

func serveRoute(r http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_EveryHandlerIsRouted(t *testing.T) {
	covered := make(map[string]bool, len(routeCases))
	for _, rc := range routeCases {
		covered[rc.handler] = true
	}

	typ := reflect.TypeOf(routeHandlers{})
	for i := 0; i < typ.NumField(); i++ {
		assert.True(t, covered[typ.Field(i).Name], "no route case for %s", typ.Field(i).Name)
	}
}

func TestNewRouter_Layout(t *testing.T) {
	r := newRouter(stubHandlers(), stubMiddleware())

	for _, rc := range routeCases {
		t.Run(rc.method+" "+rc.path, func(t *testing.T) {
			anon := serveRoute(r, rc.method, rc.path, "")
			if rc.admin {
				assert.Equal(t, http.StatusUnauthorized, anon.Code, "admin route reachable without token")
				assert.Empty(t, anon.Header().Get("X-Handler"))
			} else {
				assert.Equal(t, http.StatusOK, anon.Code)
				assert.Equal(t, rc.handler, anon.Header().Get("X-Handler"))
			}

			authed := serveRoute(r, rc.method, rc.path, testToken)
			require.Equal(t, http.StatusOK, authed.Code)
			assert.Equal(t, rc.handler, authed.Header().Get("X-Handler"))

			limited := authed.Header().Get("X-Rate-Limited") == "1"
			assert.Equal(t, rc.limited, limited, "rate limiter coverage")
		})
	}
}

func TestNewRouter_UnroutedRequests(t *testing.T) {
	r := newRouter(stubHandlers(), stubMiddleware())

	rec := serveRoute(r, http.MethodGet, "/api/v1/admin/login", "")
	assert.NotEqual(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Handler"))

	rec = serveRoute(r, http.MethodGet, "/api/v1/admin/unknown", testToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewRouter_Metrics(t *testing.T) {
	mw := stubMiddleware()
	observed := 0
	mw.Metrics = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			observed++
			next.ServeHTTP(w, r)
		})
	}
	mw.MetricsPath = "/metrics"
	r := newRouter(stubHandlers(), mw)

	rec := serveRoute(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveRoute(r, http.MethodGet, "/api/v1/availability", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, observed)

	disabled := newRouter(stubHandlers(), stubMiddleware())
	rec = serveRoute(disabled, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
