package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"gamestore/internal/logger"
	"gamestore/internal/models"
	"gamestore/internal/security"

	"go.uber.org/zap"
)

type UserRepo interface {
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID int, at time.Time) error
	GetSystemStats(ctx context.Context) (*models.SystemStats, error)
}

// LikedIDsSource отдаёт id лайкнутых продуктов для claims токена.
type LikedIDsSource interface {
	ProductIDsByUser(ctx context.Context, userID int) ([]int, error)
}

type AuthService struct {
	repo   UserRepo
	liked  LikedIDsSource
	hasher *security.Hasher
	tokens *security.TokenService
	now    func() time.Time
	// выравнивает время ответа для несуществующего логина
	verifyMissing func(password string)
}

func NewAuthService(repo UserRepo, liked LikedIDsSource, hasher *security.Hasher, tokens *security.TokenService) *AuthService {
	return &AuthService{
		repo:          repo,
		liked:         liked,
		hasher:        hasher,
		tokens:        tokens,
		now:           time.Now,
		verifyMissing: func(password string) { hasher.VerifyDummy(password) },
	}
}

func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	logger.Log.Info("Регистрация пользователя (service)", zap.String("username", username))

	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	taken, err := s.repo.IsUsernameTaken(ctx, username)
	if err != nil {
		logger.Log.Error("Ошибка проверки username", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = s.repo.IsEmailTaken(ctx, email)
	if err != nil {
		logger.Log.Error("Ошибка проверки email", zap.Error(err))
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		logger.Log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hashed,
		IsActive:     true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		logger.Log.Error("Ошибка создания пользователя", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Пользователь зарегистрирован (service)", zap.String("username", username), zap.Int("user_id", user.ID))
	return user, nil
}

// Login проверяет пароль и выпускает session-токен. Любая причина отказа,
// связанная с учётными данными, сводится к security.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.TokenResponse, *models.User, error) {
	logger.Log.Info("Попытка входа (service)", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.verifyMissing(password)
			logger.Log.Warn("Пользователь не найден (service)", zap.String("username", username))
			return nil, nil, security.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("login lookup: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Хеш пароля в базе не распознан", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, nil, security.ErrInvalidCredentials
	}
	if !ok {
		logger.Log.Warn("Неверный пароль (service)", zap.String("username", username))
		return nil, nil, security.ErrInvalidCredentials
	}
	if !user.IsActive {
		logger.Log.Warn("Вход деактивированного пользователя (service)", zap.String("username", username))
		return nil, nil, security.ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(ctx, user, password)
	}
	now := s.now()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err == nil {
		user.LastLogin = &now
	}

	tok, err := s.issue(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	logger.Log.Info("Вход выполнен (service)", zap.String("username", username))
	return tok, user, nil
}

// upgradeHash переписывает legacy-хеш в канонический формат. Ошибки не
// мешают входу.
func (s *AuthService) upgradeHash(ctx context.Context, user *models.User, password string) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		logger.Log.Warn("Не удалось пересчитать хеш пароля", zap.Int("user_id", user.ID), zap.Error(err))
		return
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		logger.Log.Warn("Не удалось сохранить пересчитанный хеш", zap.Int("user_id", user.ID), zap.Error(err))
		return
	}
	logger.Log.Info("Хеш пароля обновлён до канонической схемы",
		zap.Int("user_id", user.ID),
		zap.String("from", security.DetectScheme(user.PasswordHash).String()),
	)
	user.PasswordHash = hashed
}

// Refresh выпускает новый токен с актуальным списком лайков.
func (s *AuthService) Refresh(ctx context.Context, user *models.User) (*models.TokenResponse, error) {
	logger.Log.Debug("Обновление токена (service)", zap.Int("user_id", user.ID))
	return s.issue(ctx, user)
}

func (s *AuthService) issue(ctx context.Context, user *models.User) (*models.TokenResponse, error) {
	liked, err := s.liked.ProductIDsByUser(ctx, user.ID)
	if err != nil {
		logger.Log.Error("Ошибка получения лайков для токена", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, err
	}
	ttl := s.tokens.SessionTTL()
	token, err := s.tokens.IssueSession(security.Identity{
		Username:     user.Username,
		UserID:       user.ID,
		LikedItemIDs: liked,
		IsPrivileged: user.IsSuperuser,
	}, ttl)
	if err != nil {
		logger.Log.Error("Ошибка генерации access-токена", zap.Error(err))
		return nil, err
	}
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(ttl / time.Second),
	}, nil
}

// Authenticate - проверка bearer-токена для middleware.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	return s.tokens.Authenticate(ctx, token, s.repo)
}

func (s *AuthService) Me(ctx context.Context, user *models.User) (*models.UserProfileResponse, error) {
	liked, err := s.liked.ProductIDsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &models.UserProfileResponse{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		IsSuperuser:  user.IsSuperuser,
		LikedGameIDs: liked,
		LastLogin:    user.LastLogin,
		DateJoined:   user.DateJoined,
	}, nil
}

func (s *AuthService) GetSystemStats(ctx context.Context) (*models.SystemStats, error) {
	logger.Log.Info("Получение статистики (service)")
	return s.repo.GetSystemStats(ctx)
}
