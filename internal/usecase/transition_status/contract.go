package transition_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// AppointmentsClient интерфейс клиента API для изменения статуса записи
type AppointmentsClient interface {
	CompleteAppointment(ctx context.Context, appointmentID, barberNotes, completedBy string) error
	CancelAppointment(ctx context.Context, appointmentID, reason, cancelledBy string) error
}

// StateReader интерфейс чтения текущего списка записей
type StateReader interface {
	Appointment(id string) (domain.Appointment, bool)
}

// Fetcher интерфейс перезагрузки списка после изменения
type Fetcher interface {
	Refresh(ctx context.Context, businessID string) (bool, error)
}

// Journal интерфейс журнала изменений статусов
type Journal interface {
	Record(ctx context.Context, entry *domain.JournalEntry) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
