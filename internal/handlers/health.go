package handlers

import (
	"context"
	"net/http"
	"time"

	"gamestore/internal/logger"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db pinger
}

func NewHealthHandler(db pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Проверка живости сервиса и БД
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} helpers.Response
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		logger.WithCtx(r.Context()).Error("БД недоступна", zap.Error(err))
		helpers.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok", "db": "ok"})
}
