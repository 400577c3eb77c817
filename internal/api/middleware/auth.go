package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BarberDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-BarberDashboard/internal/session"
)

const (
	headerUserID        = "X-User-ID"
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "

	msgMissingUserID = "отсутствует ID пользователя"
)

// Auth требует заголовок X-User-ID и переносит его и bearer токен (если есть) в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(headerUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := session.WithActor(r.Context(), userID)

		auth := r.Header.Get(headerAuthorization)
		if strings.HasPrefix(auth, bearerPrefix) {
			if token := strings.TrimSpace(strings.TrimPrefix(auth, bearerPrefix)); token != "" {
				ctx = session.WithToken(ctx, token)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя дашборда из контекста
func GetUserID(ctx context.Context) (string, bool) {
	return session.ActorFromContext(ctx)
}
