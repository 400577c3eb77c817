package get_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
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

// Handle GET /api/v1/appointments
// Возвращает текущее состояние списка без обращения к API барбершопов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view := h.service.View()

	h.logger.Info("GET /appointments - View returned: count=%d, page=%d/%d, loading=%t",
		len(view.Appointments), view.Pagination.Page, view.Pagination.TotalPages, view.Loading)
	handlers.RespondJSON(w, http.StatusOK, view)
}
