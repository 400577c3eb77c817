package complete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-BarberDashboard/internal/usecase/transition_status"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgNotFound           = "запись не найдена"
	msgInvalidTransition  = "запись в текущем статусе нельзя завершить"
	msgRejected           = "API отклонил изменение статуса"
	msgSessionExpired     = "сессия истекла, требуется повторный вход"
	msgUpstream           = "API барбершопов недоступен"
)

type Handler struct {
	businessID string
	useCase    TransitionUseCase
	dashboard  DashboardService
	logger     Logger
}

func NewHandler(businessID string, useCase TransitionUseCase, dashboard DashboardService, logger Logger) *Handler {
	return &Handler{
		businessID: businessID,
		useCase:    useCase,
		dashboard:  dashboard,
		logger:     logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id}/complete - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CompleteAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/complete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Complete(r.Context(), req.ToUseCaseRequest(h.businessID, appointmentID, userID))
	if err != nil {
		switch {
		case errors.Is(err, transition_status.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id}/complete - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, transition_status.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/complete - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transition_status.ErrInvalidTransition):
			h.logger.Warn("PUT /appointments/{id}/complete - Invalid transition: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, transition_status.ErrRejected):
			h.logger.Warn("PUT /appointments/{id}/complete - Rejected: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondConflict(w, msgRejected)

		case errors.Is(err, transition_status.ErrSessionExpired):
			h.logger.Warn("PUT /appointments/{id}/complete - Session expired")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, transition_status.ErrUpstream):
			h.logger.Error("PUT /appointments/{id}/complete - Upstream failure: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadGateway(w, msgUpstream)

		default:
			h.logger.Error("PUT /appointments/{id}/complete - Failed to complete: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id}/complete - Appointment completed: appointment_id=%s, user_id=%s, refreshed=%t",
		appointmentID, userID, resp.Refreshed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp, h.dashboard.View()))
}
