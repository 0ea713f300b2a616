package middleware

import (
	"context"
	"net/http"
	"strings"

	"authbox/internal/logger"
	"authbox/internal/models"
	"authbox/internal/reqctx"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SessionReader — то, что нужно middleware от реестра сессий.
type SessionReader interface {
	Owner(ctx context.Context, key models.SessionKey) (string, error)
}

// SessionAuth проверяет Bearer-ключ сессии по реестру и кладёт владельца
// в контекст запроса. Просроченная или отозванная сессия — 401.
func SessionAuth(sessions SessionReader) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			key, ok := SessionKeyFromRequest(r)
			if !ok {
				logger.WithCtx(r.Context()).Warn("SessionAuth: отсутствует ключ сессии")
				http.Error(w, "Отсутствует ключ сессии", http.StatusUnauthorized)
				return
			}

			username, err := sessions.Owner(r.Context(), key)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("SessionAuth: сессия не найдена или просрочена", zap.Error(err))
				http.Error(w, "Сессия недействительна", http.StatusUnauthorized)
				return
			}

			ctx := reqctx.WithUsername(r.Context(), username)
			ctx = reqctx.WithSessionKey(ctx, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionKeyFromRequest достаёт ключ сессии из заголовка Authorization.
func SessionKeyFromRequest(r *http.Request) (models.SessionKey, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return models.SessionKey{}, false
	}
	key, err := models.ParseSessionKey(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return models.SessionKey{}, false
	}
	return key, true
}
