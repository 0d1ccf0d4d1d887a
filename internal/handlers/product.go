package handlers

import (
	"context"
	"net/http"
	"strings"

	"gamestore/internal/logger"
	"gamestore/internal/models"
	"gamestore/internal/utils/helpers"

	"go.uber.org/zap"
)

type productService interface {
	List(ctx context.Context, f models.ProductFilter) ([]models.Product, error)
	Page(ctx context.Context, afterID, limit int) ([]models.Product, error)
	Favorites(ctx context.Context, limit int) ([]models.Product, error)
	Search(ctx context.Context, q string, limit int) ([]models.Product, error)
	Detail(ctx context.Context, id int) (*models.ProductDetail, error)
	Related(ctx context.Context, id, limit int) ([]models.Product, error)
	CombinationPrices(ctx context.Context, id int) (*models.CombinationPrices, error)
}

type ProductHandler struct {
	svc productService
}

func NewProductHandler(svc productService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List godoc
// @Summary Каталог продуктов
// @Tags products
// @Produce json
// @Param search query string false "Подстрока в названии"
// @Success 200 {array} models.Product
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	f := models.ProductFilter{Search: strings.TrimSpace(r.URL.Query().Get("search"))}
	h.list(w, r, f)
}

// ByType godoc
// @Summary Продукты по типу
// @Tags products
// @Produce json
// @Param id path int true "ID типа"
// @Success 200 {array} models.Product
// @Router /products/by-type/{id} [get]
func (h *ProductHandler) ByType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	h.list(w, r, models.ProductFilter{TypeID: &id})
}

// ByGameType godoc
// @Summary Продукты по жанру
// @Tags products
// @Produce json
// @Param id path int true "ID жанра"
// @Success 200 {array} models.Product
// @Router /products/by-game-type/{id} [get]
func (h *ProductHandler) ByGameType(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	h.list(w, r, models.ProductFilter{GameTypeID: &id})
}

// ByConsole godoc
// @Summary Продукты по консоли
// @Tags products
// @Produce json
// @Param id path int true "ID консоли"
// @Success 200 {array} models.Product
// @Router /products/by-console/{id} [get]
func (h *ProductHandler) ByConsole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	h.list(w, r, models.ProductFilter{ConsoleID: &id})
}

func (h *ProductHandler) list(w http.ResponseWriter, r *http.Request, f models.ProductFilter) {
	products, err := h.svc.List(r.Context(), f)
	if err != nil {
		respondError(w, r, err, "Ошибка получения продуктов")
		return
	}
	helpers.JSON(w, http.StatusOK, products)
}

// Page godoc
// @Summary Постраничный каталог (keyset)
// @Tags products
// @Produce json
// @Param after_id query int false "ID последнего продукта предыдущей страницы"
// @Param limit query int false "Размер страницы (по умолч. 10, макс. 100)"
// @Success 200 {array} models.Product
// @Router /products/pagination [get]
func (h *ProductHandler) Page(w http.ResponseWriter, r *http.Request) {
	afterID, err := queryInt(r, "after_id", 0)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid after_id")
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid limit")
		return
	}
	products, err := h.svc.Page(r.Context(), afterID, limit)
	if err != nil {
		respondError(w, r, err, "Ошибка получения продуктов")
		return
	}
	helpers.JSON(w, http.StatusOK, products)
}

// Favorites godoc
// @Summary Рекомендуемые продукты
// @Tags products
// @Produce json
// @Param limit query int false "Лимит (по умолч. 20)"
// @Success 200 {array} models.Product
// @Router /products/favorites [get]
func (h *ProductHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid limit")
		return
	}
	products, err := h.svc.Favorites(r.Context(), limit)
	if err != nil {
		respondError(w, r, err, "Ошибка получения продуктов")
		return
	}
	helpers.JSON(w, http.StatusOK, products)
}

// Search godoc
// @Summary Поиск по названию и описанию
// @Tags products
// @Produce json
// @Param q query string true "Строка поиска"
// @Param limit query int false "Лимит (по умолч. 20)"
// @Success 200 {array} models.Product
// @Router /products/search [get]
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid limit")
		return
	}
	logger.WithCtx(r.Context()).Debug("Поиск продуктов", zap.String("q", q))
	products, err := h.svc.Search(r.Context(), q, limit)
	if err != nil {
		respondError(w, r, err, "Ошибка поиска")
		return
	}
	helpers.JSON(w, http.StatusOK, products)
}

// Detail godoc
// @Summary Карточка продукта
// @Tags products
// @Produce json
// @Param id path int true "ID продукта"
// @Success 200 {object} models.ProductDetail
// @Failure 404 {object} helpers.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	d, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Ошибка получения продукта")
		return
	}
	helpers.JSON(w, http.StatusOK, d)
}

// Related godoc
// @Summary Похожие продукты
// @Tags products
// @Produce json
// @Param id path int true "ID продукта"
// @Param limit query int false "Лимит (по умолч. 10)"
// @Success 200 {array} models.Product
// @Router /products/{id}/related [get]
func (h *ProductHandler) Related(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid limit")
		return
	}
	products, err := h.svc.Related(r.Context(), id, limit)
	if err != nil {
		respondError(w, r, err, "Ошибка получения похожих продуктов")
		return
	}
	helpers.JSON(w, http.StatusOK, products)
}

// CombinationPrices godoc
// @Summary Цены по комбинациям консоль/лицензия/срок
// @Tags products
// @Produce json
// @Param id path int true "ID продукта"
// @Success 200 {object} models.CombinationPrices
// @Router /products/combination-price/{id} [get]
func (h *ProductHandler) CombinationPrices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	res, err := h.svc.CombinationPrices(r.Context(), id)
	if err != nil {
		respondError(w, r, err, "Ошибка получения цен")
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}
