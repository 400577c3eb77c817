package renew_session

// RenewSessionRequest тело запроса восстановления сессии.
// Пустой token оставляет статический токен из конфигурации.
type RenewSessionRequest struct {
	Token string `json:"token"`
}
