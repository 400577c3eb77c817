package renew_session

import "github.com/m04kA/SMC-BarberDashboard/internal/session"

type SessionManager interface {
	Renew(token string)
	Status() session.Status
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
