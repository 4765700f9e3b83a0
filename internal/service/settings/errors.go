package settings

import "errors"

var (
	// ErrNotLoaded возвращается при обращении к настройкам до Load
	ErrNotLoaded = errors.New("settings not loaded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
