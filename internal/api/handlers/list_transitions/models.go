package list_transitions

import (
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// TransitionResponse запись журнала изменений статусов
type TransitionResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointmentId"`
	Action        string    `json:"action"`
	ActorID       string    `json:"actorId"`
	Comment       *string   `json:"comment,omitempty"`
	Outcome       string    `json:"outcome"`
	Error         *string   `json:"error,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromDomainEntries конвертирует записи журнала в DTO
func FromDomainEntries(entries []*domain.JournalEntry) []TransitionResponse {
	out := make([]TransitionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, TransitionResponse{
			ID:            e.ID,
			AppointmentID: e.AppointmentID,
			Action:        string(e.Action),
			ActorID:       e.ActorID,
			Comment:       e.Comment,
			Outcome:       string(e.Outcome),
			Error:         e.Error,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out
}
