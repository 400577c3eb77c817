package journal

import "github.com/m04kA/SMC-BarberDashboard/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// IDGenerator генератор идентификаторов записей журнала
type IDGenerator func() string
