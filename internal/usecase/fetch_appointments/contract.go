package fetch_appointments

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/integrations/barberapi"
	"github.com/m04kA/SMC-BarberDashboard/internal/state"
)

// AppointmentsClient интерфейс клиента API записей
type AppointmentsClient interface {
	ListBusinessAppointments(ctx context.Context, businessID string, filter domain.FilterSpec) (*barberapi.AppointmentPage, error)
}

// StateStore интерфейс контейнера состояния дашборда
type StateStore interface {
	BeginFetch(transition state.Transition) (uint64, domain.FilterSpec)
	CommitFetch(generation uint64, result state.FetchResult) bool
	FailFetch(generation uint64, message string) bool
}

// Metrics метрики загрузки списка
type Metrics interface {
	IncStaleResponse()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
