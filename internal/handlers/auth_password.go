package handlers

import (
	"context"
	"net/http"
	"strings"

	"gamestore/internal/logger"
	"gamestore/internal/models"
	"gamestore/internal/services"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
)

type passwordService interface {
	RequestReset(ctx context.Context, email string) (*services.ForgotResult, error)
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error
	ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error
}

type PasswordHandler struct {
	svc passwordService
}

func NewPasswordHandler(svc passwordService) *PasswordHandler {
	return &PasswordHandler{svc: svc}
}

type forgotReq struct {
	Email string `json:"email"`
}

// Forgot godoc
// @Summary Запрос восстановления пароля
// @Description Ответ одинаковый для известных и неизвестных адресов.
// @Tags password
// @Accept json
// @Produce json
// @Param input body forgotReq true "Email пользователя"
// @Success 200 {object} services.ForgotResult
// @Failure 400 {object} helpers.Response
// @Failure 429 {object} helpers.Response
// @Router /auth/forgot-password [post]
func (h *PasswordHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req forgotReq
	if err := decodeJSON(w, r, &req); err != nil || strings.TrimSpace(req.Email) == "" {
		log.Warn("Невалидный payload в Forgot")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	res, err := h.svc.RequestReset(r.Context(), req.Email)
	if err != nil {
		log.Error("Сбой при запросе восстановления пароля", zap.String("email_masked", helpers.MaskEmail(req.Email)), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

type resetReq struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Reset godoc
// @Summary Сброс пароля по токену
// @Tags password
// @Accept json
// @Produce json
// @Param input body resetReq true "Токен и новый пароль"
// @Success 200 {object} map[string]string
// @Failure 400 {object} helpers.Response "Пароли не совпадают, короткий пароль или неверный токен"
// @Router /auth/reset-password [post]
func (h *PasswordHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := decodeJSON(w, r, &req); err != nil || req.Token == "" {
		logger.WithCtx(r.Context()).Warn("Невалидный payload в Reset")
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.Token, req.NewPassword, req.ConfirmPassword); err != nil {
		respondError(w, r, err, "Ошибка сброса пароля")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Password has been reset successfully"})
}

type changeReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Change godoc
// @Summary Смена пароля авторизованным пользователем
// @Tags password
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body changeReq true "Старый и новый пароль"
// @Success 200 {object} map[string]string
// @Failure 400 {object} helpers.Response "Неверный старый пароль или короткий новый"
// @Failure 401 {object} helpers.Response
// @Router /auth/change-password [post]
func (h *PasswordHandler) Change(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req changeReq
	if err := decodeJSON(w, r, &req); err != nil || req.OldPassword == "" {
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	err := h.svc.ChangePassword(r.Context(), user, req.OldPassword, req.NewPassword)
	if err != nil {
		// неверный старый пароль не должен выглядеть как протухшая сессия
		if isInvalidCredentials(err) {
			helpers.Error(w, http.StatusBadRequest, "Old password is incorrect")
			return
		}
		respondError(w, r, err, "Ошибка смены пароля")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully"})
}
