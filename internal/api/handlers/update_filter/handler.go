package update_filter

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidFilter      = "некорректные параметры фильтра"
	msgSessionExpired     = "сессия истекла, требуется повторный вход"
	msgUpstream           = "фильтр применен, но записи не удалось загрузить"
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

// Handle PUT /api/v1/appointments/filter
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateFilterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/filter - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /appointments/filter - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.service.ApplyFilter(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/filter - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, dashboard.ErrSessionExpired):
			h.logger.Warn("PUT /appointments/filter - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, dashboard.ErrUpstream):
			h.logger.Warn("PUT /appointments/filter - Upstream failure: %v", err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("PUT /appointments/filter - Failed to apply filter: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/filter - Filter applied: page=%d, limit=%d, count=%d",
		view.Filter.Page, view.Filter.Limit, len(view.Appointments))
	handlers.RespondJSON(w, http.StatusOK, view)
}
