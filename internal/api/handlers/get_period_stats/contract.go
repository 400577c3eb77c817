package get_period_stats

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics/models"
)

type AnalyticsService interface {
	PeriodSummary(ctx context.Context, q models.PeriodQuery) (*models.PeriodSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
