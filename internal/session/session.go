package session

import (
	"context"
	"strings"
	"sync"
	"time"
)

type ctxKey int

const (
	tokenKey ctxKey = iota
	actorKey
)

// WithToken сохраняет bearer токен запроса в контексте
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext извлекает bearer токен запроса
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// WithActor сохраняет идентификатор пользователя дашборда в контексте
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey, actorID)
}

// ActorFromContext извлекает идентификатор пользователя дашборда
func ActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(actorKey).(string)
	return actor, ok && actor != ""
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Manager источник токена для клиента API и обработчик завершения сессии.
// Токен из контекста запроса имеет приоритет над статическим токеном из конфигурации.
// После Terminate статический токен больше не выдается до Renew.
type Manager struct {
	mu sync.RWMutex

	staticToken string
	expired     bool
	reason      string
	expiredAt   time.Time

	log Logger
	now func() time.Time
}

// NewManager создает менеджер сессии
func NewManager(staticToken string, log Logger) *Manager {
	return &Manager{
		staticToken: strings.TrimSpace(staticToken),
		log:         log,
		now:         time.Now,
	}
}

// Token возвращает токен для исходящего запроса
func (m *Manager) Token(ctx context.Context) string {
	if token, ok := TokenFromContext(ctx); ok {
		return token
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.expired {
		return ""
	}
	return m.staticToken
}

// Terminate помечает сессию завершенной (API ответил 401).
// 401 на запрос с собственным токеном пользователя не затрагивает статический токен.
func (m *Manager) Terminate(ctx context.Context, reason string) {
	if _, ok := TokenFromContext(ctx); ok {
		m.log.Warn("Session: request token rejected, static session kept: %s", reason)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired {
		return
	}

	m.expired = true
	m.reason = reason
	m.expiredAt = m.now()

	m.log.Warn("Session: terminated: %s", reason)
}

// Renew восстанавливает сессию. Пустой токен оставляет прежний статический токен.
func (m *Manager) Renew(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token = strings.TrimSpace(token); token != "" {
		m.staticToken = token
	}
	wasExpired := m.expired
	m.expired = false
	m.reason = ""
	m.expiredAt = time.Time{}

	if wasExpired {
		m.log.Info("Session: renewed")
	}
}

// Status состояние сессии
type Status struct {
	Expired   bool       `json:"expired"`
	Reason    string     `json:"reason,omitempty"`
	ExpiredAt *time.Time `json:"expiredAt,omitempty"`
}

// Status возвращает текущее состояние сессии
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.expired {
		return Status{}
	}

	at := m.expiredAt
	return Status{
		Expired:   true,
		Reason:    m.reason,
		ExpiredAt: &at,
	}
}
