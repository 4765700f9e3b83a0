package recaptcha

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("recaptcha client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса проверки
	ErrInvalidResponse = errors.New("recaptcha client: invalid response")
)
