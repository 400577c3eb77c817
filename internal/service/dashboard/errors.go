package dashboard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSessionExpired возвращается, когда API ответил 401
	ErrSessionExpired = errors.New("session expired")

	// ErrUpstream возвращается, когда список не удалось загрузить
	ErrUpstream = errors.New("appointments could not be loaded")
)
