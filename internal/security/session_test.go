package security

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gamestore/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fakeStore struct {
	users map[string]*models.User
	err   error
}

func (s *fakeStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[username]
	if !ok {
		return nil, fmt.Errorf("get user %q: %w", username, models.ErrNotFound)
	}
	return u, nil
}

func newTestService(t *testing.T, clock *fakeClock) *TokenService {
	t.Helper()
	svc, err := NewTokenService(Keys{
		SessionSecret: []byte("session-secret"),
		ResetSecret:   []byte("reset-secret"),
	}, WithClock(clock.Now))
	require.NoError(t, err)
	return svc
}

func aliceStore() *fakeStore {
	return &fakeStore{users: map[string]*models.User{
		"alice": {ID: 7, Username: "alice", Email: "alice@example.com", IsActive: true},
	}}
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	t.Parallel()
	_, err := NewTokenService(Keys{})
	require.Error(t, err)
}

func TestNewTokenService_Defaults(t *testing.T) {
	t.Parallel()
	svc, err := NewTokenService(Keys{SessionSecret: []byte("k")})
	require.NoError(t, err)
	assert.Equal(t, DefaultSessionTTL, svc.SessionTTL())
	assert.Equal(t, DefaultResetMaxAge, svc.ResetMaxAge())
}

func TestSession_AliceScenario(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestService(t, clock)
	store := aliceStore()

	tok, err := svc.IssueSession(Identity{
		Username:     "alice",
		UserID:       7,
		LikedItemIDs: []int{101, 205},
		IsPrivileged: false,
	}, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, strings.Split(tok, "."), 3)

	user, err := svc.Authenticate(context.Background(), tok, store)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 7, user.ID)

	claims, err := svc.ParseSession(tok)
	require.NoError(t, err)
	assert.Equal(t, []int{101, 205}, claims.LikedItemIDs)
	assert.Equal(t, 7, claims.UserID)
	assert.False(t, claims.IsPrivileged)
	assert.Equal(t, clock.Now().Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())

	clock.Advance(31 * time.Minute)
	_, err = svc.Authenticate(context.Background(), tok, store)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSession_DefaultTTL(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueSession(Identity{Username: "alice", UserID: 7}, 0)
	require.NoError(t, err)

	claims, err := svc.ParseSession(tok)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(DefaultSessionTTL).Unix(), claims.ExpiresAt.Unix())
	assert.NotNil(t, claims.LikedItemIDs, "liked ids must serialize as [] not null")

	clock.Advance(DefaultSessionTTL - time.Second)
	_, err = svc.ParseSession(tok)
	require.NoError(t, err)

	clock.Advance(time.Second)
	_, err = svc.ParseSession(tok)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSession_AnyPositiveTTL(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)
	store := aliceStore()

	for _, ttl := range []time.Duration{time.Second, time.Minute, 24 * time.Hour} {
		tok, err := svc.IssueSession(Identity{Username: "alice", UserID: 7}, ttl)
		require.NoError(t, err)
		u, err := svc.Authenticate(context.Background(), tok, store)
		require.NoError(t, err, ttl)
		assert.Equal(t, "alice", u.Username)
	}
}

func TestSession_TamperAnyByte(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueSession(Identity{Username: "alice", UserID: 7, LikedItemIDs: []int{1}}, time.Hour)
	require.NoError(t, err)

	for i := 0; i < len(tok); i++ {
		b := []byte(tok)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		_, err := svc.ParseSession(string(b))
		assert.ErrorIs(t, err, ErrInvalidCredentials, "byte %d", i)
	}
}

func TestSession_WrongSecret(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)
	other, err := NewTokenService(Keys{SessionSecret: []byte("other")}, WithClock(clock.Now))
	require.NoError(t, err)

	tok, err := other.IssueSession(Identity{Username: "alice", UserID: 7}, time.Hour)
	require.NoError(t, err)

	_, err = svc.ParseSession(tok)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSession_RejectsForeignTokens(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)
	exp := jwt.NewNumericDate(clock.Now().Add(time.Hour))

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		UserID:           7,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte("session-secret"))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	}).SignedString([]byte("session-secret"))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp},
	}).SignedString([]byte("session-secret"))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice", ExpiresAt: exp},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"no subject": noSub,
		"no expiry":  noExp,
		"hs512":      hs512,
		"alg none":   none,
		"garbage":    "not.a.jwt",
		"empty":      "",
	} {
		_, err := svc.ParseSession(tok)
		assert.ErrorIs(t, err, ErrInvalidCredentials, name)
	}
}

func TestAuthenticate_UserGone(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)

	tok, err := svc.IssueSession(Identity{Username: "bob", UserID: 9}, time.Hour)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), tok, aliceStore())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)
	store := aliceStore()
	store.users["alice"].IsActive = false

	tok, err := svc.IssueSession(Identity{Username: "alice", UserID: 7}, time.Hour)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), tok, store)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_StoreError(t *testing.T) {
	t.Parallel()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	svc := newTestService(t, clock)
	dbDown := errors.New("db down")

	tok, err := svc.IssueSession(Identity{Username: "alice", UserID: 7}, time.Hour)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), tok, &fakeStore{err: dbDown})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
