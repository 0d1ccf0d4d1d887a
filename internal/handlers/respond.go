package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gamestore/internal/logger"
	"gamestore/internal/models"
	"gamestore/internal/reqctx"
	"gamestore/internal/security"
	"gamestore/internal/services"
	"gamestore/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// respondError переводит ошибку сервиса в HTTP-статус. fallback - текст для 500.
func respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.WithCtx(r.Context())
	switch {
	case errors.Is(err, security.ErrInvalidCredentials):
		helpers.Unauthorized(w, "Incorrect username or password")
	case errors.Is(err, security.ErrInvalidResetToken):
		helpers.Error(w, http.StatusBadRequest, "Invalid or expired token")
	case errors.Is(err, models.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		helpers.Error(w, http.StatusForbidden, "Not enough permissions")
	case errors.Is(err, services.ErrUsernameTaken):
		helpers.Error(w, http.StatusBadRequest, "Username already registered")
	case errors.Is(err, services.ErrEmailTaken):
		helpers.Error(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, services.ErrPasswordMismatch):
		helpers.Error(w, http.StatusBadRequest, "Passwords do not match")
	case errors.Is(err, services.ErrPasswordTooShort):
		helpers.Error(w, http.StatusBadRequest, "Password must be at least 8 characters long")
	case errors.Is(err, services.ErrUserGone):
		helpers.Error(w, http.StatusBadRequest, "User not found")
	case errors.Is(err, services.ErrInvalidInput):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	default:
		log.Error(fallback, zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, fallback)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(dst)
}

// pathInt достаёт положительный int из mux-переменной; при ошибке сам пишет 400.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || v <= 0 {
		helpers.Error(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}

// queryInt - необязательный int из query; пустое значение даёт def.
func queryInt(r *http.Request, name string, def int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func queryIntPtr(r *http.Request, name string) (*int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func queryBoolPtr(r *http.Request, name string) (*bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// currentUser - пользователь, которого положил JWTAuth. Без него 401.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	u, ok := reqctx.GetUser(r.Context())
	if !ok {
		helpers.Unauthorized(w, "Not authenticated")
		return nil, false
	}
	return u, true
}

func isInvalidCredentials(err error) bool {
	return errors.Is(err, security.ErrInvalidCredentials)
}
