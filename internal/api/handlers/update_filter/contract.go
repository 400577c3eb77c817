package update_filter

import (
	"context"

	"github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard/models"
)

type DashboardService interface {
	ApplyFilter(ctx context.Context, req *models.FilterUpdate) (*models.ViewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
