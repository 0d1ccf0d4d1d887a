package middleware

import (
	"net/http"

	"gamestore/internal/logger"
	"gamestore/internal/reqctx"
	"gamestore/internal/utils/helpers"
)

// OnlySuperuser должен стоять ПОСЛЕ JWTAuth, чтобы пользователь уже был в контексте.
func OnlySuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := reqctx.GetUser(r.Context())
		if !ok {
			helpers.Unauthorized(w, "Not authenticated")
			return
		}
		if !user.IsSuperuser {
			logger.WithCtx(r.Context()).Warn("Доступ запрещён: нужен суперпользователь")
			helpers.Error(w, http.StatusForbidden, "Доступ запрещён")
			return
		}
		next.ServeHTTP(w, r)
	})
}
