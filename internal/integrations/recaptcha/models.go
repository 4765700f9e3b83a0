package recaptcha

import "time"

// DefaultVerifyURL адрес проверки токена reCAPTCHA
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// ServiceName имя внешнего сервиса в ExternalServiceError
const ServiceName = "recaptcha"

// VerifyResponse ответ siteverify
type VerifyResponse struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	ErrorCodes  []string  `json:"error-codes"`
}
