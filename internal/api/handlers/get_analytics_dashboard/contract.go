package get_analytics_dashboard

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics/models"
)

type AnalyticsService interface {
	Dashboard(ctx context.Context, businessID string, period domain.Period) (*models.Dashboard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
