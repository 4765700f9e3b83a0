package mailer

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"strings"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/domain"
)

// SMTPConfig параметры SMTP-отправителя
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	ReplyTo  string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender отправляет письма через SMTP
type SMTPSender struct {
	cfg  SMTPConfig
	addr string
	auth smtp.Auth
	send sendFunc
	now  func() time.Time
	log  Logger
}

// NewSMTPSender создает отправителя. Авторизация PLAIN включается, если задан Username.
func NewSMTPSender(cfg SMTPConfig, log Logger) *SMTPSender {
	s := &SMTPSender{
		cfg:  cfg,
		addr: net.JoinHostPort(strings.TrimSpace(cfg.Host), fmt.Sprint(cfg.Port)),
		send: smtp.SendMail,
		now:  time.Now,
		log:  log,
	}
	if cfg.Username != "" {
		s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return s
}

// Send отправляет письмо. Ошибки SMTP возвращаются как *domain.ExternalServiceError.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return &domain.ExternalServiceError{Service: ServiceName, Err: err}
	}

	raw, err := buildMIME(s.cfg, msg, s.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	if err := s.send(s.addr, s.auth, s.cfg.From, []string{msg.To}, raw); err != nil {
		s.log.Error("Send: smtp delivery to %s failed: %v", msg.To, err)
		return &domain.ExternalServiceError{Service: ServiceName, Err: err}
	}

	s.log.Info("Send: delivered %q to %s", msg.Subject, msg.To)
	return nil
}

func validateMessage(msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("%w: empty recipient", ErrInvalidMessage)
	}
	if msg.HTMLBody == "" && msg.TextBody == "" {
		return fmt.Errorf("%w: empty body", ErrInvalidMessage)
	}
	return nil
}

// buildMIME собирает multipart/alternative письмо с текстовой и HTML частями
func buildMIME(cfg SMTPConfig, msg Message, now time.Time) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", msg.TextBody},
		{"text/html; charset=UTF-8", msg.HTMLBody},
	}
	for _, p := range parts {
		if p.content == "" {
			continue
		}
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", cfg.FromName), cfg.From)
	}

	var head bytes.Buffer
	fmt.Fprintf(&head, "From: %s\r\n", from)
	fmt.Fprintf(&head, "To: %s\r\n", msg.To)
	if cfg.ReplyTo != "" {
		fmt.Fprintf(&head, "Reply-To: %s\r\n", cfg.ReplyTo)
	}
	fmt.Fprintf(&head, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", msg.Subject))
	fmt.Fprintf(&head, "Date: %s\r\n", now.Format(time.RFC1123Z))
	head.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&head, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", mw.Boundary())

	return append(head.Bytes(), body.Bytes()...), nil
}

// LogSender пишет письма в лог вместо отправки. Используется, когда SMTP выключен.
type LogSender struct {
	log Logger
}

// NewLogSender создает отправителя-заглушку
func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

// Send логирует письмо
func (s *LogSender) Send(_ context.Context, msg Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}
	s.log.Info("Send: mail disabled, to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
