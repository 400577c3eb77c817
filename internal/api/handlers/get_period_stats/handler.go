package get_period_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics/models"
)

const (
	msgInvalidPeriod  = "некорректный период, допустимо: day, week, month, year"
	msgInvalidDate    = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidParams  = "некорректные параметры запроса"
	msgSessionExpired = "сессия истекла, требуется повторный вход"
	msgUpstream       = "не удалось загрузить статистику"
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

// Handle GET /api/v1/analytics/period
// Query params: period (по умолчанию day), from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodStr := r.URL.Query().Get("period")
	if periodStr == "" {
		periodStr = string(domain.PeriodDay)
	}
	period, ok := domain.ParsePeriod(periodStr)
	if !ok {
		h.logger.Warn("GET /analytics/period - Invalid period: %q", periodStr)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /analytics/period - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /analytics/period - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.PeriodSummary(r.Context(), models.PeriodQuery{
		BusinessID: h.businessID,
		Period:     period,
		From:       from,
		To:         to,
	})
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /analytics/period - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, analytics.ErrSessionExpired):
			h.logger.Warn("GET /analytics/period - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, analytics.ErrUpstream):
			h.logger.Warn("GET /analytics/period - Upstream failure: %v", err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("GET /analytics/period - Failed to get period stats: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/period - Period stats returned: period=%s, points=%d", period, len(result.Points))
	handlers.RespondJSON(w, http.StatusOK, result)
}
