package analytics

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/integrations/barberapi"
)

// AnalyticsClient интерфейс клиента API аналитики
type AnalyticsClient interface {
	GetPeriodStats(ctx context.Context, q barberapi.PeriodStatsQuery) ([]domain.PeriodDataPoint, error)
	GetDashboard(ctx context.Context, businessID string, period domain.Period) (*barberapi.Dashboard, error)
	GetReport(ctx context.Context, q barberapi.ReportQuery) (*barberapi.Report, error)
}

// Cache интерфейс кэша ответов аналитики
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
