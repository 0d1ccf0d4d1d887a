package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"gamestore/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "username", "first_name", "last_name", "email", "password", "is_active", "is_staff", "is_superuser", "last_login", "date_joined"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestUserRepository_GetByUsername(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM auth_user WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(7, "alice", "Alice", "A", "alice@example.com", "$pbkdf2-sha256$...", true, false, false, nil, joined))

	u, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.Nil(t, u.LastLogin)
	assert.Equal(t, joined, u.DateJoined)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM auth_user WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_GetByUsername_DBError(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("FROM auth_user WHERE username = $1")).
		WithArgs("alice").
		WillReturnError(boom)

	_, err := repo.GetByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestUserRepository_GetUserByEmail_CaseInsensitive(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = lower($1)")).
		WithArgs("Alice@Example.com").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(7, "alice", "", "", "alice@example.com", "x", true, false, false, nil, time.Now()))

	u, err := repo.GetUserByEmail(context.Background(), "Alice@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestUserRepository_CreateUser(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)
	joined := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auth_user")).
		WithArgs("bob", "", "", "bob@example.com", "hash", true, false, false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "date_joined"}).AddRow(11, joined))

	u := &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "hash", IsActive: true}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	assert.Equal(t, 11, u.ID)
	assert.Equal(t, joined, u.DateJoined)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE auth_user SET password = $1 WHERE id = $2")).
		WithArgs("new-hash", 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE auth_user SET password = $1 WHERE id = $2")).
		WithArgs("new-hash", 8).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdatePassword(context.Background(), 7, "new-hash"))
	assert.ErrorIs(t, repo.UpdatePassword(context.Background(), 8, "new-hash"), models.ErrNotFound)
}

func TestUserRepository_IsUsernameTaken(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM auth_user WHERE username = $1)")).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.IsUsernameTaken(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUserRepository_GetSystemStats(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM auth_user")).
		WillReturnRows(pgxmock.NewRows([]string{"u", "s", "a", "p", "o", "po", "l"}).
			AddRow(8, 1, 6, 40, 12, 3, 25))

	s, err := repo.GetSystemStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, s.TotalUsers)
	assert.Equal(t, 3, s.PendingOrders)
	assert.Equal(t, 75, s.ActiveUsersPct)
}
