package get_analytics_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics"
)

const (
	msgInvalidPeriod  = "некорректный период, допустимо: day, week, month, year"
	msgSessionExpired = "сессия истекла, требуется повторный вход"
	msgUpstream       = "не удалось загрузить аналитику"
)

type Handler struct {
	businessID string
	service    AnalyticsService
	logger     Logger
}

func NewHandler(businessID string, service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		businessID: businessID,
		service:    service,
		logger:     logger,
	}
}

// Handle GET /api/v1/analytics/dashboard
// Query params: period (по умолчанию month)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodStr := r.URL.Query().Get("period")
	if periodStr == "" {
		periodStr = string(domain.PeriodMonth)
	}
	period, ok := domain.ParsePeriod(periodStr)
	if !ok {
		h.logger.Warn("GET /analytics/dashboard - Invalid period: %q", periodStr)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.Dashboard(r.Context(), h.businessID, period)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /analytics/dashboard - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, analytics.ErrSessionExpired):
			h.logger.Warn("GET /analytics/dashboard - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, analytics.ErrUpstream):
			h.logger.Warn("GET /analytics/dashboard - Upstream failure: %v", err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("GET /analytics/dashboard - Failed to get dashboard: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/dashboard - Dashboard returned: period=%s, services=%d, barbers=%d",
		period, len(result.TopServices), len(result.TopBarbers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
