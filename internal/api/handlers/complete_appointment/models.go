package complete_appointment

import (
	dashboardModels "github.com/m04kA/SMC-BarberDashboard/internal/service/dashboard/models"
	"github.com/m04kA/SMC-BarberDashboard/internal/usecase/transition_status"
)

// CompleteAppointmentRequest тело запроса завершения записи
type CompleteAppointmentRequest struct {
	Notes string `json:"notes"`
}

// ToUseCaseRequest конвертирует тело запроса в модель use case
func (r *CompleteAppointmentRequest) ToUseCaseRequest(businessID, appointmentID, actorID string) *transition_status.CompleteRequest {
	return &transition_status.CompleteRequest{
		BusinessID:    businessID,
		AppointmentID: appointmentID,
		Notes:         r.Notes,
		ActorID:       actorID,
	}
}

// TransitionResponse результат изменения статуса вместе с обновленным списком
type TransitionResponse struct {
	AppointmentID string                        `json:"appointmentId"`
	Status        string                        `json:"status"`
	Refreshed     bool                          `json:"refreshed"`
	RefreshError  *string                       `json:"refreshError,omitempty"`
	View          *dashboardModels.ViewResponse `json:"view"`
}

// FromUseCaseResponse конвертирует результат use case в DTO
func FromUseCaseResponse(resp *transition_status.Response, view *dashboardModels.ViewResponse) *TransitionResponse {
	out := &TransitionResponse{
		AppointmentID: resp.AppointmentID,
		Status:        string(resp.Status),
		Refreshed:     resp.Refreshed,
		View:          view,
	}
	if resp.RefreshError != "" {
		msg := resp.RefreshError
		out.RefreshError = &msg
	}
	return out
}
