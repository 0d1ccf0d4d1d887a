package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gamestore/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	mu   sync.Mutex
	sent map[string]string
	err  error
}

func (m *mockMailer) SendPasswordReset(_ context.Context, to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sent == nil {
		m.sent = map[string]string{}
	}
	m.sent[to] = token
	return m.err
}

func TestRequestReset_UniformResponse(t *testing.T) {
	h := security.NewHasher(1000)
	tokens := newTokens(t)
	repo := newMockUserRepo(userWithPassword(t, h, "alice", "wonderland"))
	mailer := &mockMailer{}
	svc := NewPasswordService(repo, h, tokens, mailer, false)

	known, err := svc.RequestReset(context.Background(), "alice@example.com")
	require.NoError(t, err)
	unknown, err := svc.RequestReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)

	assert.Equal(t, unknown, known)
	assert.Nil(t, known.ResetToken)
	assert.Equal(t, 3600, known.ExpiresIn)

	require.Contains(t, mailer.sent, "alice@example.com")
	email, err := tokens.VerifyReset(mailer.sent["alice@example.com"], 0)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestRequestReset_ExposeTokenAndMailerFailure(t *testing.T) {
	h := security.NewHasher(1000)
	repo := newMockUserRepo(userWithPassword(t, h, "alice", "wonderland"))
	svc := NewPasswordService(repo, h, newTokens(t), &mockMailer{err: ErrQueueFull}, true)

	res, err := svc.RequestReset(context.Background(), " alice@example.com ")
	require.NoError(t, err)
	require.NotNil(t, res.ResetToken)
	assert.NotEmpty(t, *res.ResetToken)
}

func TestRequestReset_StoreError(t *testing.T) {
	h := security.NewHasher(1000)
	repo := newMockUserRepo()
	repo.lookupErr = errors.New("db down")
	svc := NewPasswordService(repo, h, newTokens(t), nil, false)

	_, err := svc.RequestReset(context.Background(), "alice@example.com")
	assert.Error(t, err)
}

func TestResetPassword(t *testing.T) {
	h := security.NewHasher(1000)
	tokens := newTokens(t)
	alice := userWithPassword(t, h, "alice", "wonderland")
	repo := newMockUserRepo(alice)
	svc := NewPasswordService(repo, h, tokens, nil, true)

	tok, err := tokens.IssueReset("alice@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword(context.Background(), tok, "newpassword", "otherpassword"), ErrPasswordMismatch)
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), tok, "short", "short"), ErrPasswordTooShort)
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), tok+"x", "newpassword", "newpassword"), security.ErrInvalidResetToken)

	require.NoError(t, svc.ResetPassword(context.Background(), tok, "newpassword", "newpassword"))
	ok, err := h.Verify("newpassword", alice.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	// токен не одноразовый
	require.NoError(t, svc.ResetPassword(context.Background(), tok, "another-one", "another-one"))
}

func TestResetPassword_UserGone(t *testing.T) {
	h := security.NewHasher(1000)
	tokens := newTokens(t)
	svc := NewPasswordService(newMockUserRepo(), h, tokens, nil, false)

	tok, err := tokens.IssueReset("ghost@example.com")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), tok, "newpassword", "newpassword"), ErrUserGone)
}

func TestChangePassword(t *testing.T) {
	h := security.NewHasher(1000)
	alice := userWithPassword(t, h, "alice", "wonderland")
	svc := NewPasswordService(newMockUserRepo(alice), h, newTokens(t), nil, false)

	assert.ErrorIs(t, svc.ChangePassword(context.Background(), alice, "wrong", "newpassword"), security.ErrInvalidCredentials)
	assert.ErrorIs(t, svc.ChangePassword(context.Background(), alice, "wonderland", "short"), ErrPasswordTooShort)

	require.NoError(t, svc.ChangePassword(context.Background(), alice, "wonderland", "newpassword"))
	ok, err := h.Verify("newpassword", alice.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}
