package middleware

import (
	"context"
	"time"
)

// HTTPObserver метрики HTTP запросов
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// TokenValidator проверка токена сессии администратора
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
