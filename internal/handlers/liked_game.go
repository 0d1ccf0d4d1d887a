package handlers

import (
	"context"
	"net/http"

	"gamestore/internal/models"
	"gamestore/internal/utils/helpers"
)

type likedGameService interface {
	ListByUser(ctx context.Context, userID int) ([]models.LikedGame, error)
	Like(ctx context.Context, userID, productID int) (*models.LikedGame, bool, error)
	Unlike(ctx context.Context, userID, productID int) error
}

type LikedGameHandler struct {
	svc likedGameService
}

func NewLikedGameHandler(svc likedGameService) *LikedGameHandler {
	return &LikedGameHandler{svc: svc}
}

// ListByUser godoc
// @Summary Избранные игры пользователя
// @Tags liked-games
// @Produce json
// @Param user_id path int true "ID пользователя"
// @Success 200 {array} models.LikedGame
// @Router /liked-games/{user_id} [get]
func (h *LikedGameHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "user_id")
	if !ok {
		return
	}
	likes, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		respondError(w, r, err, "Ошибка получения избранного")
		return
	}
	helpers.JSON(w, http.StatusOK, likes)
}

// Like godoc
// @Summary Добавить игру в избранное
// @Description Повторный вызов возвращает существующую запись со статусом 200.
// @Tags liked-games
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.LikeGameRequest true "Продукт"
// @Success 201 {object} models.LikedGame
// @Success 200 {object} models.LikedGame
// @Failure 404 {object} helpers.Response "Продукт не найден"
// @Router /liked-games [post]
func (h *LikedGameHandler) Like(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req models.LikeGameRequest
	if err := decodeJSON(w, r, &req); err != nil || req.ProductID <= 0 {
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	like, created, err := h.svc.Like(r.Context(), user.ID, req.ProductID)
	if err != nil {
		respondError(w, r, err, "Ошибка добавления в избранное")
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.JSON(w, status, like)
}

// Unlike godoc
// @Summary Убрать игру из избранного
// @Tags liked-games
// @Security ApiKeyAuth
// @Param product_id path int true "ID продукта"
// @Success 204
// @Failure 404 {object} helpers.Response
// @Router /liked-games/{product_id} [delete]
func (h *LikedGameHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	productID, ok := pathInt(w, r, "product_id")
	if !ok {
		return
	}
	if err := h.svc.Unlike(r.Context(), user.ID, productID); err != nil {
		respondError(w, r, err, "Ошибка удаления из избранного")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
