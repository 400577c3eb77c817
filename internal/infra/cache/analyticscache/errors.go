package analyticscache

import "errors"

var (
	// ErrConnect возвращается, если Redis недоступен при старте
	ErrConnect = errors.New("analyticscache: failed to connect to redis")

	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("analyticscache: failed to encode value")

	// ErrDecode возвращается при ошибке десериализации значения
	ErrDecode = errors.New("analyticscache: failed to decode value")

	// ErrCommand возвращается при ошибке выполнения команды Redis
	ErrCommand = errors.New("analyticscache: redis command failed")
)
