package kv

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("kv: key not found")

	// ErrUnknownDriver возвращается при неизвестном драйвере хранилища
	ErrUnknownDriver = errors.New("kv: unknown storage driver")
)
