package journal

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// Nop журнал, используемый без базы данных: записи не сохраняются
type Nop struct{}

// Record ничего не делает
func (Nop) Record(context.Context, *domain.JournalEntry) error {
	return nil
}

// List всегда возвращает пустой список
func (Nop) List(context.Context, domain.JournalFilter) ([]*domain.JournalEntry, error) {
	return []*domain.JournalEntry{}, nil
}
