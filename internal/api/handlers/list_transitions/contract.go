package list_transitions

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

type JournalReader interface {
	List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
