package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() AppointmentDraft {
	return AppointmentDraft{
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john.smith@email.com",
		Phone:     "+63 918 123 4567",
		Service:   "Topographic Survey",
		Date:      "2025-03-10",
		Time:      "09.00 - 10.00",
	}
}

func TestValidate_Draft(t *testing.T) {
	require.NoError(t, Validate(validDraft()))

	t.Run("invalid email", func(t *testing.T) {
		d := validDraft()
		d.Email = "not-an-email"

		err := Validate(d)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"email"}, verr.FieldNames())
	})

	t.Run("lists every missing field", func(t *testing.T) {
		err := Validate(AppointmentDraft{Email: "a@b.co"})
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.ElementsMatch(t,
			[]string{"first_name", "last_name", "phone", "service", "date", "time"},
			verr.FieldNames())
	})

	t.Run("bad date format", func(t *testing.T) {
		d := validDraft()
		d.Date = "10/03/2025"
		assert.ErrorIs(t, Validate(d), ErrValidation)
	})
}

func TestValidate_EngineerInput(t *testing.T) {
	in := EngineerInput{Name: "Juan", Email: "juan@samalsurveying.com", Phone: "1", Status: "retired"}

	err := Validate(in)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"status"}, verr.FieldNames())
}

func TestTrimDraft(t *testing.T) {
	d := validDraft()
	d.FirstName = "  John "
	assert.Equal(t, "John", TrimDraft(d).FirstName)
}

func TestExternalServiceError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := error(&ExternalServiceError{Service: "recaptcha", Err: cause})

	assert.ErrorIs(t, err, ErrExternalService)
	assert.ErrorIs(t, err, cause)
}
