package handlers

import (
	"context"
	"net/http"

	"gamestore/internal/models"
	"gamestore/internal/utils/helpers"

	"github.com/gorilla/mux"
)

type couponService interface {
	GetByName(ctx context.Context, name string) ([]models.Coupon, error)
	Validate(ctx context.Context, code string, productID int, userID *int) (*models.Coupon, error)
}

type CouponHandler struct {
	svc couponService
}

func NewCouponHandler(svc couponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// GetByName godoc
// @Summary Купоны по имени
// @Tags coupons
// @Produce json
// @Param name path string true "Имя купона"
// @Success 200 {array} models.Coupon
// @Failure 404 {object} helpers.Response
// @Router /coupons/{name} [get]
func (h *CouponHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.svc.GetByName(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		respondError(w, r, err, "Ошибка получения купона")
		return
	}
	helpers.JSON(w, http.StatusOK, coupons)
}

// Validate godoc
// @Summary Проверить купон для продукта
// @Description Купон подходит, если он действителен, не истёк, выписан на этот продукт и на пользователя (или общий).
// @Tags coupons
// @Produce json
// @Param code path string true "Код купона"
// @Param product_id query int true "ID продукта"
// @Param user_id query int false "ID пользователя"
// @Success 200 {object} models.Coupon
// @Failure 404 {object} helpers.Response
// @Router /products/coupon/{code} [get]
func (h *CouponHandler) Validate(w http.ResponseWriter, r *http.Request) {
	productID, err := queryInt(r, "product_id", 0)
	if err != nil || productID <= 0 {
		helpers.Error(w, http.StatusBadRequest, "product_id is required")
		return
	}
	userID, err := queryIntPtr(r, "user_id")
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid user_id")
		return
	}
	c, err := h.svc.Validate(r.Context(), mux.Vars(r)["code"], productID, userID)
	if err != nil {
		respondError(w, r, err, "Ошибка проверки купона")
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}
