package availability

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidHorizon возвращается при некорректном горизонте поиска
	ErrInvalidHorizon = errors.New("invalid horizon")

	// ErrInvalidMonth возвращается при некорректном месяце календаря
	ErrInvalidMonth = errors.New("invalid calendar month")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
