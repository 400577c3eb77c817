package transition_status

import "github.com/m04kA/SMC-BarberDashboard/internal/domain"

// CompleteRequest запрос на завершение записи
type CompleteRequest struct {
	BusinessID    string
	AppointmentID string
	Notes         string
	ActorID       string
}

// CancelRequest запрос на отмену записи
type CancelRequest struct {
	BusinessID    string
	AppointmentID string
	Reason        string
	ActorID       string
}

// Response результат изменения статуса
type Response struct {
	AppointmentID string
	Status        domain.AppointmentStatus
	// Refreshed true, если список был перезагружен и применен
	Refreshed bool
	// RefreshError ошибка перезагрузки списка (изменение при этом выполнено)
	RefreshError string
}
