package dashboard

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/state"
)

// Fetcher интерфейс координатора загрузки списка
type Fetcher interface {
	ExecuteTransition(ctx context.Context, businessID string, transition state.Transition) (bool, error)
}

// StateReader интерфейс чтения состояния дашборда
type StateReader interface {
	Snapshot() state.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
