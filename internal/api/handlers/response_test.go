package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

func TestRespondValidationError(t *testing.T) {
	verr := &domain.ValidationError{}
	verr.Add("email", "must be a valid email address")
	verr.Add("phone", "is required")

	rec := httptest.NewRecorder()
	RespondValidationError(rec, verr)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "email", body.Fields[0].Field)
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestDecodeQuery(t *testing.T) {
	var filter domain.AppointmentFilter
	r := httptest.NewRequest(http.MethodGet, "/?status=pending&engineer=Grace+Hopper&unknown=1", nil)
	require.NoError(t, DecodeQuery(r, &filter))
	assert.Equal(t, "pending", filter.Status)
	assert.Equal(t, "Grace Hopper", filter.EngineerName)
	assert.Empty(t, filter.Service)
}
