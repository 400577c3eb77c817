package get_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/analytics/models"
)

const (
	msgInvalidDate    = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidParams  = "некорректные параметры отчета"
	msgSessionExpired = "сессия истекла, требуется повторный вход"
	msgUpstream       = "не удалось загрузить отчет"
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

// Handle GET /api/v1/analytics/reports
// Query params: type (обязательно), from, to, groupBy (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /analytics/reports - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /analytics/reports - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	q := r.URL.Query()
	result, err := h.service.Report(r.Context(), models.ReportQuery{
		BusinessID: h.businessID,
		Type:       q.Get("type"),
		From:       from,
		To:         to,
		GroupBy:    q.Get("groupBy"),
	})
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /analytics/reports - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, analytics.ErrSessionExpired):
			h.logger.Warn("GET /analytics/reports - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, analytics.ErrUpstream):
			h.logger.Warn("GET /analytics/reports - Upstream failure: %v", err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("GET /analytics/reports - Failed to get report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/reports - Report returned: type=%s, rows=%d", result.Type, len(result.Rows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
