package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"gamestore/internal/logger"
	"gamestore/internal/models"
	"gamestore/internal/reqctx"
	"gamestore/internal/security"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
)

// Authenticator проверяет bearer-токен и возвращает живого пользователя.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(h[7:])
	return tok, tok != ""
}

func JWTAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			log := logger.WithCtx(r.Context())

			tokenString, ok := bearerToken(r)
			if !ok {
				log.Warn("JWTAuth: отсутствует access token")
				helpers.Unauthorized(w, "Not authenticated")
				return
			}

			user, err := auth.Authenticate(r.Context(), tokenString)
			if err != nil {
				if errors.Is(err, security.ErrInvalidCredentials) {
					log.Warn("JWTAuth: неверный или просроченный токен")
				} else {
					log.Error("JWTAuth: ошибка проверки пользователя", zap.Error(err))
				}
				helpers.Unauthorized(w, "Could not validate credentials")
				return
			}

			ctx := reqctx.WithUser(r.Context(), user)
			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден", zap.String("username", user.Username))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
