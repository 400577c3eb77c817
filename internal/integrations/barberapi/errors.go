package barberapi

import "errors"

var (
	// ErrUnauthorized возвращается на 401: сессия истекла, токен недействителен
	ErrUnauthorized = errors.New("barberapi client: unauthorized")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("barberapi client: appointment not found")

	// ErrRejected возвращается, когда API отклонило запрос (4xx или success=false)
	ErrRejected = errors.New("barberapi client: request rejected")

	// ErrServer возвращается на ответы 5xx
	ErrServer = errors.New("barberapi client: server error")

	// ErrNetwork возвращается, когда запрос не удалось выполнить (сеть, timeout)
	ErrNetwork = errors.New("barberapi client: network error")

	// ErrInvalidResponse возвращается, когда ответ не соответствует ожидаемой схеме
	ErrInvalidResponse = errors.New("barberapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("barberapi client: internal error")
)
