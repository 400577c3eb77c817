package analytics

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("analytics: invalid input data")

	// ErrSessionExpired возвращается, когда API ответил 401
	ErrSessionExpired = errors.New("analytics: session expired")

	// ErrUpstream возвращается, когда API недоступен или ответил некорректно
	ErrUpstream = errors.New("analytics: upstream failure")
)
