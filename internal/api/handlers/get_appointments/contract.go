package get_appointments

import "github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard/models"

type DashboardService interface {
	View() *models.ViewResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
