package repository

import (
	"context"
	"fmt"
	"time"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"go.uber.org/zap"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, first_name, last_name, email, password, is_active, is_staff, is_superuser, last_login, date_joined`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.IsActive,
		&u.IsStaff,
		&u.IsSuperuser,
		&u.LastLogin,
		&u.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.Log.Info("Создание пользователя (repo)", zap.String("username", user.Username))
	query := `
	INSERT INTO auth_user (username, first_name, last_name, email, password, is_active, is_staff, is_superuser)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, date_joined`
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.IsStaff,
		user.IsSuperuser,
	).Scan(&user.ID, &user.DateJoined)
	if err != nil {
		logger.Log.Error("Ошибка создания пользователя (repo)", zap.Error(err))
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	logger.Log.Debug("Проверка username на уникальность (repo)", zap.String("username", username))
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM auth_user WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки username (repo)", zap.Error(err))
	}
	return exists, err
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM auth_user WHERE lower(email) = lower($1))`, email).Scan(&exists)
	if err != nil {
		logger.Log.Error("Ошибка проверки email (repo)", zap.Error(err))
	}
	return exists, err
}

// GetByUsername реализует security.IdentityStore.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по username (repo)", zap.String("username", username))
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM auth_user WHERE username = $1`, username)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err, "get user by username")
	}
	return u, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM auth_user WHERE lower(email) = lower($1) ORDER BY id LIMIT 1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err, "get user by email")
	}
	return u, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM auth_user WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, notFound(err, "get user by id")
	}
	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	logger.Log.Info("Обновление пароля (repo)", zap.Int("user_id", userID))
	tag, err := r.db.Exec(ctx, `UPDATE auth_user SET password = $1 WHERE id = $2`, passwordHash, userID)
	if err != nil {
		logger.Log.Error("Ошибка обновления пароля (repo)", zap.Error(err))
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update password: %w", models.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE auth_user SET last_login = $1 WHERE id = $2`, at, userID)
	if err != nil {
		logger.Log.Warn("Не удалось обновить last_login (repo)", zap.Int("user_id", userID), zap.Error(err))
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *UserRepository) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	logger.Log.Info("Получение статистики системы (repo)")
	query := `
	SELECT
		(SELECT COUNT(*) FROM auth_user),
		(SELECT COUNT(*) FROM auth_user WHERE is_superuser),
		(SELECT COUNT(*) FROM auth_user WHERE is_active),
		(SELECT COUNT(*) FROM products_products),
		(SELECT COUNT(*) FROM order_buy),
		(SELECT COUNT(*) FROM order_buy WHERE status = 'pending'),
		(SELECT COUNT(*) FROM liked_games)`
	var s models.SystemStats
	err := r.db.QueryRow(ctx, query).Scan(
		&s.TotalUsers,
		&s.Superusers,
		&s.ActiveUsers,
		&s.ProductsCount,
		&s.OrdersCount,
		&s.PendingOrders,
		&s.LikesCount,
	)
	if err != nil {
		logger.Log.Error("Ошибка получения статистики (repo)", zap.Error(err))
		return nil, fmt.Errorf("system stats: %w", err)
	}
	if s.TotalUsers > 0 {
		s.ActiveUsersPct = s.ActiveUsers * 100 / s.TotalUsers
	}
	return &s, nil
}
