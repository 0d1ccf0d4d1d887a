package handlers

import (
	"context"
	"mime"
	"net/http"
	"strings"

	"gamestore/internal/logger"
	"gamestore/internal/models"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
)

type authService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.TokenResponse, *models.User, error)
	Refresh(ctx context.Context, user *models.User) (*models.TokenResponse, error)
	Me(ctx context.Context, user *models.User) (*models.UserProfileResponse, error)
	GetSystemStats(ctx context.Context) (*models.SystemStats, error)
}

type AuthHandler struct {
	authService authService
}

func NewAuthHandler(authService authService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegisterRequest true "Данные регистрации"
// @Success 201 {object} models.User
// @Failure 400 {object} helpers.Response "Ошибка валидации или занятый username/email"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	log.Info("Регистрация пользователя", zap.String("username", req.Username))

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		log.Warn("Ошибка регистрации пользователя", zap.String("username", req.Username), zap.Error(err))
		respondError(w, r, err, "Ошибка регистрации")
		return
	}
	helpers.JSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Вход по логину и паролю
// @Description Принимает JSON или форму (application/x-www-form-urlencoded, multipart) с полями username и password.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} helpers.Response "Неверный логин или пароль"
// @Failure 429 {object} helpers.Response "Слишком много попыток"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	req, err := readLogin(w, r)
	if err != nil {
		log.Warn("Невалидный запрос в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный запрос")
		return
	}
	if req.Username == "" || req.Password == "" {
		helpers.Error(w, http.StatusBadRequest, "username и password обязательны")
		return
	}

	tok, _, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err, "Ошибка входа")
		return
	}
	helpers.JSON(w, http.StatusOK, tok)
}

func readLogin(w http.ResponseWriter, r *http.Request) (loginRequest, error) {
	var req loginRequest
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		if err := decodeJSON(w, r, &req); err != nil {
			return req, err
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
		if strings.HasPrefix(ct, "multipart/") {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				return req, err
			}
		} else if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	}
	req.Username = strings.TrimSpace(req.Username)
	return req, nil
}

// Refresh godoc
// @Summary Новый access-токен с актуальными лайками
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.TokenResponse
// @Failure 401 {object} helpers.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	tok, err := h.authService.Refresh(r.Context(), user)
	if err != nil {
		respondError(w, r, err, "Ошибка обновления токена")
		return
	}
	helpers.JSON(w, http.StatusOK, tok)
}

// Me godoc
// @Summary Профиль текущего пользователя
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.UserProfileResponse
// @Failure 401 {object} helpers.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	profile, err := h.authService.Me(r.Context(), user)
	if err != nil {
		respondError(w, r, err, "Ошибка получения профиля")
		return
	}
	helpers.JSON(w, http.StatusOK, profile)
}

// Stats godoc
// @Summary Статистика системы (только суперпользователь)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.SystemStats
// @Failure 403 {object} helpers.Response
// @Router /admin/stats [get]
func (h *AuthHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.authService.GetSystemStats(r.Context())
	if err != nil {
		respondError(w, r, err, "Ошибка получения статистики")
		return
	}
	helpers.JSON(w, http.StatusOK, stats)
}
