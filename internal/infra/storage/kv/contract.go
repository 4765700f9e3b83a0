package kv

import (
	"context"
	"time"
)

// Store key-value хранилище именованных записей.
// Значения хранятся как непрозрачные байты (JSON документы).
type Store interface {
	// Get возвращает значение ключа или ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)
	// Put записывает значение ключа
	Put(ctx context.Context, key string, value []byte) error
	// PutMany атомарно записывает несколько ключей
	PutMany(ctx context.Context, values map[string][]byte) error
	// Delete удаляет ключ; отсутствие ключа не ошибка
	Delete(ctx context.Context, key string) error
	// Keys возвращает все ключи в лексикографическом порядке
	Keys(ctx context.Context) ([]string, error)
	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error
	Close() error
}

// Observer получатель метрик операций хранилища
type Observer interface {
	ObserveStore(operation string, elapsed time.Duration, err error)
}
