package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
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

func sampleConfirmation() Confirmation {
	return Confirmation{
		FirstName:    "Ada",
		LastName:     "<Lovelace>",
		Email:        "ada@example.com",
		Phone:        "555-0100",
		Service:      "Boundary Survey",
		Date:         "2025-03-11",
		Time:         "09.00 - 10.00",
		CompanyName:  "Survey Services",
		CompanyEmail: "admin@surveyservices.com",
		CompanyPhone: "(555) 123-4567",
	}
}

func TestBuildConfirmation(t *testing.T) {
	msg, err := BuildConfirmation("ada@example.com", sampleConfirmation())
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "Appointment Confirmation - Survey Services", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "&lt;Lovelace&gt;")
	assert.Contains(t, msg.HTMLBody, "09.00 - 10.00")
	assert.Contains(t, msg.TextBody, "Dear Ada <Lovelace>,")
	assert.Contains(t, msg.TextBody, "Service: Boundary Survey")
}

func TestSMTPSender_Send(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.local", Port: 2525, From: "no-reply@surveyservices.com", FromName: "Survey Services", ReplyTo: "admin@surveyservices.com"}
	msg, err := BuildConfirmation("ada@example.com", sampleConfirmation())
	require.NoError(t, err)

	t.Run("delivers multipart message", func(t *testing.T) {
		s := NewSMTPSender(cfg, nopLogger{})
		s.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

		var gotAddr string
		var gotTo []string
		var gotRaw string
		s.send = func(addr string, _ smtp.Auth, from string, to []string, raw []byte) error {
			gotAddr, gotTo, gotRaw = addr, to, string(raw)
			assert.Equal(t, cfg.From, from)
			return nil
		}

		require.NoError(t, s.Send(context.Background(), msg))
		assert.Equal(t, "smtp.local:2525", gotAddr)
		assert.Equal(t, []string{"ada@example.com"}, gotTo)
		assert.True(t, strings.HasPrefix(gotRaw, "From: Survey Services <no-reply@surveyservices.com>\r\n"))
		assert.Contains(t, gotRaw, "Reply-To: admin@surveyservices.com\r\n")
		assert.Contains(t, gotRaw, "Content-Type: multipart/alternative; boundary=")
		assert.Contains(t, gotRaw, "text/plain; charset=UTF-8")
		assert.Contains(t, gotRaw, "text/html; charset=UTF-8")
	})

	t.Run("smtp failure is external", func(t *testing.T) {
		s := NewSMTPSender(cfg, nopLogger{})
		s.send = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		}
		err := s.Send(context.Background(), msg)
		assert.ErrorIs(t, err, domain.ErrExternalService)
	})

	t.Run("empty recipient", func(t *testing.T) {
		s := NewSMTPSender(cfg, nopLogger{})
		err := s.Send(context.Background(), Message{TextBody: "x"})
		assert.ErrorIs(t, err, ErrInvalidMessage)
	})
}

func TestLogSender_Send(t *testing.T) {
	s := NewLogSender(nopLogger{})
	assert.NoError(t, s.Send(context.Background(), Message{To: "a@b.c", TextBody: "x"}))
	assert.ErrorIs(t, s.Send(context.Background(), Message{}), ErrInvalidMessage)
}
