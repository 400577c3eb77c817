package get_report

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics/models"
)

type AnalyticsService interface {
	Report(ctx context.Context, q models.ReportQuery) (*models.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
