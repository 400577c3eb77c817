package refresh_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard"
)

const (
	msgSessionExpired = "сессия истекла, требуется повторный вход"
	msgUpstream       = "не удалось загрузить записи"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Refresh(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrSessionExpired):
			h.logger.Warn("POST /appointments/refresh - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, dashboard.ErrUpstream):
			h.logger.Warn("POST /appointments/refresh - Upstream failure: %v", err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("POST /appointments/refresh - Failed to refresh: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/refresh - Refreshed: count=%d", len(view.Appointments))
	handlers.RespondJSON(w, http.StatusOK, view)
}
