package bookings

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда дата или слот недоступны для записи
	ErrSlotNotAvailable = errors.New("selected date or time slot is not available")

	// ErrEngineerInactive возвращается при попытке назначить неактивного инженера
	ErrEngineerInactive = errors.New("engineer is not active")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
