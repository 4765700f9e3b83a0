package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

const confirmationHTML = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Appointment Confirmation</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <h1>Appointment Confirmed!</h1>
  <p>Dear <strong>{{.FirstName}} {{.LastName}}</strong>,</p>
  <p>Thank you for booking with {{.CompanyName}}! Your appointment has been received.</p>
  <h3>Appointment Details:</h3>
  <table>
    <tr><td><b>Service:</b></td><td>{{.Service}}</td></tr>
    <tr><td><b>Date:</b></td><td>{{.Date}}</td></tr>
    <tr><td><b>Time:</b></td><td>{{.Time}}</td></tr>
    <tr><td><b>Phone:</b></td><td>{{.Phone}}</td></tr>
    <tr><td><b>Email:</b></td><td>{{.Email}}</td></tr>
  </table>
  <p><strong>Important Notes:</strong></p>
  <ul>
    <li>Please be available 10 minutes before your scheduled time</li>
    <li>Have any necessary documents or information ready</li>
    <li>If you need to reschedule or cancel, please contact us at least 24 hours in advance</li>
  </ul>
  <p>Best regards,<br><strong>{{.CompanyName}} Team</strong></p>
  <p>Email: {{.CompanyEmail}}<br>Phone: {{.CompanyPhone}}</p>
</body>
</html>
`

const confirmationText = `APPOINTMENT CONFIRMATION - {{.CompanyName}}

Dear {{.FirstName}} {{.LastName}},

Your appointment has been received!

APPOINTMENT DETAILS:
Service: {{.Service}}
Date: {{.Date}}
Time: {{.Time}}
Phone: {{.Phone}}
Email: {{.Email}}

Important Notes:
- Please be available 10 minutes before your scheduled time
- Have any necessary documents or information ready
- If you need to reschedule or cancel, contact us 24 hours in advance

Best regards,
{{.CompanyName}} Team
Email: {{.CompanyEmail}}
Phone: {{.CompanyPhone}}
`

var (
	confirmationHTMLTmpl = htmltemplate.Must(htmltemplate.New("confirmation.html").Parse(confirmationHTML))
	confirmationTextTmpl = texttemplate.Must(texttemplate.New("confirmation.txt").Parse(confirmationText))
)

// ConfirmationSubject тема письма-подтверждения
func ConfirmationSubject(companyName string) string {
	return fmt.Sprintf("Appointment Confirmation - %s", companyName)
}

// BuildConfirmation рендерит письмо-подтверждение для получателя to.
// Клиент и администратор получают одно и то же письмо.
func BuildConfirmation(to string, data Confirmation) (Message, error) {
	var html, text bytes.Buffer
	if err := confirmationHTMLTmpl.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("%w: html: %v", ErrRender, err)
	}
	if err := confirmationTextTmpl.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("%w: text: %v", ErrRender, err)
	}

	return Message{
		To:       to,
		Subject:  ConfirmationSubject(data.CompanyName),
		HTMLBody: html.String(),
		TextBody: text.String(),
	}, nil
}
