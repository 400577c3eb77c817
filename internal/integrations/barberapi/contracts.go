package barberapi

import (
	"context"
	"time"
)

// TokenProvider источник bearer токена текущей сессии
type TokenProvider interface {
	Token(ctx context.Context) string
}

// SessionTerminator внешний обработчик завершения сессии (вызывается на 401)
type SessionTerminator interface {
	Terminate(ctx context.Context, reason string)
}

// Metrics метрики вызовов API
type Metrics interface {
	ObserveUpstream(endpoint, outcome string, d time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
