package complete_appointment

import (
	"context"

	dashboardModels "github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard/models"
	"github.com/m04kA/SMC-BarberDashboard/internal/usecase/transition_status"
)

type TransitionUseCase interface {
	Complete(ctx context.Context, req *transition_status.CompleteRequest) (*transition_status.Response, error)
}

type DashboardService interface {
	View() *dashboardModels.ViewResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
