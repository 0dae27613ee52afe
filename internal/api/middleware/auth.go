package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
)

// HeaderUserID заголовок с идентификатором администратора
// Проставляется API-шлюзом после проверки токена
const HeaderUserID = "X-User-ID"

type userIDKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет наличие заголовка X-User-ID и кладёт его в контекст
// Запросы без заголовка отклоняются с 401
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := r.Header.Get(HeaderUserID)
			if uid == "" {
				logger.Warn("Auth: missing %s header: %s %s", HeaderUserID, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "missing "+HeaderUserID+" header")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey{}, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) string {
	uid, _ := ctx.Value(userIDKey{}).(string)
	return uid
}
