package records

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись ещё ни разу не сохранялась
	ErrRecordNotFound = errors.New("records: record not found")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("records: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("records: failed to decode record")

	// ErrStore возвращается при ошибке хранилища
	ErrStore = errors.New("records: store error")
)
