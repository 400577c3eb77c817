package transition_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("transition_status: invalid input data")

	// ErrInvalidTransition возвращается, когда запись в текущем статусе нельзя перевести в целевой
	ErrInvalidTransition = errors.New("transition_status: invalid status transition")

	// ErrAppointmentNotFound возвращается, когда API не нашел запись
	ErrAppointmentNotFound = errors.New("transition_status: appointment not found")

	// ErrSessionExpired возвращается, когда API ответил 401
	ErrSessionExpired = errors.New("transition_status: session expired")

	// ErrRejected возвращается, когда API отклонил изменение
	ErrRejected = errors.New("transition_status: rejected by api")

	// ErrUpstream возвращается, когда API недоступен
	ErrUpstream = errors.New("transition_status: upstream failure")
)
