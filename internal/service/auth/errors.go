package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken возвращается при невалидном токене сессии
	ErrInvalidToken = errors.New("invalid session token")

	// ErrTokenExpired возвращается, когда срок действия сессии истёк
	ErrTokenExpired = errors.New("session expired")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
