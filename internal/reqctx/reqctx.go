// internal/reqctx/reqctx.go
package reqctx

import (
	"context"

	"gamestore/internal/models"
)

type key int

const (
	keyRequestID key = iota
	keyUserID
	keyUser
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, keyUserID, id)
}

func GetUserID(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(keyUserID).(int)
	return v, ok
}

// WithUser кладёт в контекст пользователя, которого вернул JWTAuth.
func WithUser(ctx context.Context, u *models.User) context.Context {
	ctx = context.WithValue(ctx, keyUser, u)
	return WithUserID(ctx, u.ID)
}

func GetUser(ctx context.Context) (*models.User, bool) {
	v, ok := ctx.Value(keyUser).(*models.User)
	return v, ok && v != nil
}
