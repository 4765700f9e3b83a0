package export_data

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("export_data: internal error")

	// ErrInvalidSchedule возвращается, когда cron выражение резервного копирования некорректно
	ErrInvalidSchedule = errors.New("export_data: invalid backup schedule")
)
