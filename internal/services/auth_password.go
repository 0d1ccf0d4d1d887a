package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gamestore/internal/logger"
	"gamestore/internal/models"
	"gamestore/internal/security"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
)

type PasswordResetMailer interface {
	SendPasswordReset(ctx context.Context, to, token string) error
}

type PasswordService struct {
	repo        UserRepo
	hasher      *security.Hasher
	tokens      *security.TokenService
	mailer      PasswordResetMailer // nil - письма не отправляются
	exposeToken bool
}

func NewPasswordService(repo UserRepo, hasher *security.Hasher, tokens *security.TokenService, mailer PasswordResetMailer, exposeToken bool) *PasswordService {
	return &PasswordService{
		repo:        repo,
		hasher:      hasher,
		tokens:      tokens,
		mailer:      mailer,
		exposeToken: exposeToken,
	}
}

const forgotMessage = "If the email exists, a reset link has been sent."

type ForgotResult struct {
	Message    string  `json:"message"`
	ResetToken *string `json:"reset_token"`
	ExpiresIn  int     `json:"expires_in"`
}

// RequestReset выпускает токен сброса. Ответ одинаковый для известных и
// неизвестных адресов; ошибка возвращается только при сбое хранилища.
func (s *PasswordService) RequestReset(ctx context.Context, email string) (*ForgotResult, error) {
	email = strings.TrimSpace(email)
	res := &ForgotResult{
		Message:   forgotMessage,
		ExpiresIn: int(s.tokens.ResetMaxAge() / time.Second),
	}
	logger.Log.Info("Запрос на сброс пароля", zap.String("email_masked", helpers.MaskEmail(email)))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Log.Warn("Сброс пароля для неизвестного email", zap.String("email_masked", helpers.MaskEmail(email)))
			return res, nil
		}
		return nil, fmt.Errorf("reset lookup: %w", err)
	}

	token, err := s.tokens.IssueReset(user.Email)
	if err != nil {
		logger.Log.Error("Ошибка генерации токена сброса", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
			logger.Log.Error("Ошибка постановки письма сброса в очередь", zap.Int("user_id", user.ID), zap.Error(err))
		}
	}
	if s.exposeToken {
		res.ResetToken = &token
	}
	logger.Log.Info("Токен сброса пароля выпущен", zap.Int("user_id", user.ID))
	return res, nil
}

// ResetPassword проверяет токен и задаёт новый пароль. Токен не гасится и
// остаётся годным до истечения срока.
func (s *PasswordService) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	logger.Log.Info("Попытка сброса пароля по токену")

	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if len([]rune(newPassword)) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	email, err := s.tokens.VerifyReset(token, 0)
	if err != nil {
		logger.Log.Warn("Неверный или просроченный токен сброса")
		return err
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrUserGone
		}
		return fmt.Errorf("reset lookup: %w", err)
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		logger.Log.Error("Ошибка обновления пароля пользователя", zap.Int("user_id", user.ID), zap.Error(err))
		return err
	}
	logger.Log.Info("Пароль успешно сброшен", zap.Int("user_id", user.ID))
	return nil
}

// ChangePassword меняет пароль авторизованного пользователя по старому паролю.
func (s *PasswordService) ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error {
	logger.Log.Info("Смена пароля (авторизованный пользователь)", zap.Int("user_id", user.ID))

	if len([]rune(newPassword)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	ok, err := s.hasher.Verify(oldPassword, user.PasswordHash)
	if err != nil || !ok {
		logger.Log.Warn("Старый пароль не совпадает", zap.Int("user_id", user.ID))
		return security.ErrInvalidCredentials
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		logger.Log.Error("Ошибка обновления пароля пользователя", zap.Int("user_id", user.ID), zap.Error(err))
		return err
	}
	logger.Log.Info("Пароль успешно изменён", zap.Int("user_id", user.ID))
	return nil
}
