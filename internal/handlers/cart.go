package handlers

import (
	"context"
	"net/http"

	"gamestore/internal/models"
	"gamestore/internal/utils/helpers"
)

type cartService interface {
	List(ctx context.Context, caller *models.User, userID *int, estado *bool) ([]models.CartItem, error)
	Get(ctx context.Context, caller *models.User, id int) (*models.CartItem, error)
	Add(ctx context.Context, caller *models.User, req models.CartCreateRequest) (*models.CartItem, error)
	UpdateEstado(ctx context.Context, caller *models.User, productID int, req models.CartUpdateRequest) (*models.CartItem, error)
	Delete(ctx context.Context, caller *models.User, id int) error
}

type CartHandler struct {
	svc cartService
}

func NewCartHandler(svc cartService) *CartHandler {
	return &CartHandler{svc: svc}
}

// List godoc
// @Summary Корзина
// @Tags shopping-car
// @Security ApiKeyAuth
// @Produce json
// @Param state query bool false "Фильтр по estado"
// @Param user_id query int false "Чужая корзина (только суперпользователь)"
// @Success 200 {array} models.CartItem
// @Failure 403 {object} helpers.Response
// @Router /shopping-car [get]
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	estado, err := queryBoolPtr(r, "state")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid state")
		return
	}
	userID, err := queryIntPtr(r, "user_id")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid user_id")
		return
	}
	items, err := h.svc.List(r.Context(), user, userID, estado)
	if err != nil {
		respondError(w, r, err, "Ошибка получения корзины")
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}

// Get godoc
// @Summary Позиция корзины
// @Tags shopping-car
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID позиции"
// @Success 200 {object} models.CartItem
// @Failure 404 {object} helpers.Response
// @Router /shopping-car/{id} [get]
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	item, err := h.svc.Get(r.Context(), user, id)
	if err != nil {
		respondError(w, r, err, "Ошибка получения позиции корзины")
		return
	}
	helpers.JSON(w, http.StatusOK, item)
}

// Add godoc
// @Summary Добавить в корзину
// @Tags shopping-car
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.CartCreateRequest true "Комбинация продукта"
// @Success 201 {object} models.CartItem
// @Router /shopping-car [post]
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req models.CartCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	item, err := h.svc.Add(r.Context(), user, req)
	if err != nil {
		respondError(w, r, err, "Ошибка добавления в корзину")
		return
	}
	helpers.JSON(w, http.StatusCreated, item)
}

// UpdateEstado godoc
// @Summary Изменить estado позиции по продукту
// @Tags shopping-car
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param product_id path int true "ID комбинации продукта"
// @Param input body models.CartUpdateRequest true "Новый estado"
// @Success 200 {object} models.CartItem
// @Failure 404 {object} helpers.Response
// @Router /shopping-car/{product_id} [put]
func (h *CartHandler) UpdateEstado(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	productID, ok := pathInt(w, r, "product_id")
	if !ok {
		return
	}
	var req models.CartUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	item, err := h.svc.UpdateEstado(r.Context(), user, productID, req)
	if err != nil {
		respondError(w, r, err, "Ошибка обновления корзины")
		return
	}
	helpers.JSON(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Удалить позицию корзины
// @Tags shopping-car
// @Security ApiKeyAuth
// @Param id path int true "ID позиции"
// @Success 204
// @Failure 404 {object} helpers.Response
// @Router /shopping-car/{id} [delete]
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), user, id); err != nil {
		respondError(w, r, err, "Ошибка удаления из корзины")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
