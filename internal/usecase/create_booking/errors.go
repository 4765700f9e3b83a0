package create_booking

import "errors"

var (
	// ErrMaintenance возвращается, когда приём записей выключен режимом обслуживания
	ErrMaintenance = errors.New("create_booking: bookings are temporarily disabled")

	// ErrVerificationFailed возвращается, когда проверка на бота не пройдена
	ErrVerificationFailed = errors.New("create_booking: bot verification failed")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("create_booking: internal error")
)
