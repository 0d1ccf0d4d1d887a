package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamestore/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultSessionTTL = 30 * time.Minute

// Keys - секреты и сроки жизни токенов. Собирается один раз при старте.
type Keys struct {
	SessionSecret []byte
	ResetSecret   []byte // пустой - используется SessionSecret
	SessionTTL    time.Duration
	ResetMaxAge   time.Duration
}

// SessionClaims - содержимое session-токена.
type SessionClaims struct {
	UserID       int   `json:"user_id"`
	LikedItemIDs []int `json:"liked_item_ids"`
	IsPrivileged bool  `json:"is_privileged"`
	jwt.RegisteredClaims
}

// Identity - то, что зашивается в токен при логине/refresh.
type Identity struct {
	Username     string
	UserID       int
	LikedItemIDs []int
	IsPrivileged bool
}

// IdentityStore - источник живых записей пользователей. Для отсутствующего
// пользователя должен вернуть ошибку, оборачивающую models.ErrNotFound.
type IdentityStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type TokenService struct {
	sessionSecret []byte
	resetKey      []byte
	sessionTTL    time.Duration
	resetMaxAge   time.Duration
	now           func() time.Time
	parser        *jwt.Parser
}

type Option func(*TokenService)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(keys Keys, opts ...Option) (*TokenService, error) {
	if len(keys.SessionSecret) == 0 {
		return nil, errors.New("session secret is empty")
	}
	resetSecret := keys.ResetSecret
	if len(resetSecret) == 0 {
		resetSecret = keys.SessionSecret
	}
	s := &TokenService{
		sessionSecret: append([]byte(nil), keys.SessionSecret...),
		resetKey:      deriveResetKey(resetSecret),
		sessionTTL:    keys.SessionTTL,
		resetMaxAge:   keys.ResetMaxAge,
		now:           time.Now,
	}
	if s.sessionTTL <= 0 {
		s.sessionTTL = DefaultSessionTTL
	}
	if s.resetMaxAge <= 0 {
		s.resetMaxAge = DefaultResetMaxAge
	}
	for _, opt := range opts {
		opt(s)
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	return s, nil
}

func (s *TokenService) SessionTTL() time.Duration { return s.sessionTTL }

func (s *TokenService) ResetMaxAge() time.Duration { return s.resetMaxAge }

// IssueSession подписывает HS256-токен с exp = now + ttl. ttl <= 0 - значение по умолчанию.
func (s *TokenService) IssueSession(id Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.sessionTTL
	}
	liked := id.LikedItemIDs
	if liked == nil {
		liked = []int{}
	}
	now := s.now()
	claims := SessionClaims{
		UserID:       id.UserID,
		LikedItemIDs: liked,
		IsPrivileged: id.IsPrivileged,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.sessionSecret)
}

// ParseSession проверяет подпись и срок действия, не обращаясь к хранилищу.
func (s *TokenService) ParseSession(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.sessionSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// Authenticate - единая точка доверия для защищённых маршрутов: проверяет
// токен и заново находит пользователя по subject. Удалённый или
// деактивированный пользователь не проходит, даже если токен цел.
func (s *TokenService) Authenticate(ctx context.Context, tokenString string, store IdentityStore) (*models.User, error) {
	claims, err := s.ParseSession(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := store.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("identity lookup: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
