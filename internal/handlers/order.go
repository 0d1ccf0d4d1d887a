package handlers

import (
	"context"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"gamestore/internal/logger"
	"gamestore/internal/models"
	"gamestore/internal/services"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
)

type orderService interface {
	ListMine(ctx context.Context, caller *models.User) ([]models.Order, error)
	ListAll(ctx context.Context, caller *models.User, page int) (*services.OrderPage, error)
	Get(ctx context.Context, id int) (*models.Order, error)
	Create(ctx context.Context, caller *models.User, in models.OrderInput) (*models.Order, error)
	Update(ctx context.Context, caller *models.User, id int, in models.OrderInput) (*models.Order, error)
	Delete(ctx context.Context, caller *models.User, id int) error
}

type OrderHandler struct {
	svc orderService
}

func NewOrderHandler(svc orderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

const maxOrderUpload = 10 << 20

type orderRequest struct {
	ProductID   int     `json:"product_id"`
	Status      *string `json:"status"`
	FilePath    *string `json:"file_path"`
	Description *string `json:"description_order"`
}

// readOrder принимает multipart-форму (product_id, status, file, description_order)
// или JSON. От файла сохраняется только имя.
func readOrder(w http.ResponseWriter, r *http.Request) (models.OrderInput, error) {
	var in models.OrderInput
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if ct == "application/json" {
		var req orderRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return in, err
		}
		return models.OrderInput{
			ProductID:   req.ProductID,
			Status:      req.Status,
			FilePath:    req.FilePath,
			Description: req.Description,
		}, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxOrderUpload)
	if strings.HasPrefix(ct, "multipart/") {
		if err := r.ParseMultipartForm(maxOrderUpload); err != nil {
			return in, err
		}
	} else if err := r.ParseForm(); err != nil {
		return in, err
	}

	if v := r.PostFormValue("product_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return in, err
		}
		in.ProductID = id
	}
	if v, ok := formValue(r, "status"); ok {
		in.Status = &v
	}
	if v, ok := formValue(r, "description_order"); ok {
		in.Description = &v
	}
	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["file"]; len(files) > 0 {
			name := filepath.Base(files[0].Filename)
			in.FilePath = &name
		}
	}
	return in, nil
}

func formValue(r *http.Request, key string) (string, bool) {
	vs, ok := r.PostForm[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// ListMine godoc
// @Summary Мои заказы
// @Tags order-buy
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Order
// @Router /order-buy [get]
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orders, err := h.svc.ListMine(r.Context(), user)
	if err != nil {
		respondError(w, r, err, "Ошибка получения заказов")
		return
	}
	helpers.JSON(w, http.StatusOK, orders)
}

// ListAll godoc
// @Summary Все заказы (только суперпользователь)
// @Tags order-buy
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "Страница (по 20 заказов)"
// @Success 200 {object} services.OrderPage
// @Failure 403 {object} helpers.Response
// @Router /order-buy/admin [get]
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	page, err := queryInt(r, "page", 1)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid page")
		return
	}
	res, err := h.svc.ListAll(r.Context(), user, page)
	if err != nil {
		respondError(w, r, err, "Ошибка получения заказов")
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}

// Get godoc
// @Summary Заказ по ID
// @Tags order-buy
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} models.Order
// @Failure 404 {object} helpers.Response
// @Router /order-buy/{id} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Ошибка получения заказа")
		return
	}
	helpers.JSON(w, http.StatusOK, o)
}

// Create godoc
// @Summary Создать заказ
// @Tags order-buy
// @Security ApiKeyAuth
// @Accept multipart/form-data,json
// @Produce json
// @Param product_id formData int true "ID комбинации продукта"
// @Param status formData string false "Статус (по умолч. pending)"
// @Param file formData file false "Чек об оплате"
// @Success 201 {object} models.Order
// @Failure 404 {object} helpers.Response "Комбинация продукта не найдена"
// @Router /order-buy [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	in, err := readOrder(w, r)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный запрос на создание заказа", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	o, err := h.svc.Create(r.Context(), user, in)
	if err != nil {
		respondError(w, r, err, "Ошибка создания заказа")
		return
	}
	helpers.JSON(w, http.StatusCreated, o)
}

// Update godoc
// @Summary Изменить заказ (владелец или суперпользователь)
// @Tags order-buy
// @Security ApiKeyAuth
// @Accept multipart/form-data,json
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} models.Order
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /order-buy/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	in, err := readOrder(w, r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	o, err := h.svc.Update(r.Context(), user, id, in)
	if err != nil {
		respondError(w, r, err, "Ошибка обновления заказа")
		return
	}
	helpers.JSON(w, http.StatusOK, o)
}

// Delete godoc
// @Summary Удалить заказ (владелец или суперпользователь)
// @Tags order-buy
// @Security ApiKeyAuth
// @Param id path int true "ID заказа"
// @Success 204
// @Failure 403 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /order-buy/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), user, id); err != nil {
		respondError(w, r, err, "Ошибка удаления заказа")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
