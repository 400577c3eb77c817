package fetch_appointments

import "errors"

var (
	// ErrSessionExpired возвращается, когда API ответил 401 и сессия завершена
	ErrSessionExpired = errors.New("fetch_appointments: session expired")

	// ErrUpstream возвращается, когда API недоступен или ответил некорректно
	ErrUpstream = errors.New("fetch_appointments: upstream failure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("fetch_appointments: invalid input data")
)
