package services

import (
	"context"
	"strings"
	"time"

	"gamestore/internal/models"
)

type CouponRepo interface {
	ListByName(ctx context.Context, name string) ([]models.Coupon, error)
	FindValid(ctx context.Context, code string, productID int, userID *int, now time.Time) (*models.Coupon, error)
}

type CouponService struct {
	repo CouponRepo
	now  func() time.Time
}

func NewCouponService(repo CouponRepo) *CouponService {
	return &CouponService{repo: repo, now: time.Now}
}

// GetByName - все купоны с таким именем; пустой результат даёт ErrNotFound.
func (s *CouponService) GetByName(ctx context.Context, name string) ([]models.Coupon, error) {
	coupons, err := s.repo.ListByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(coupons) == 0 {
		return nil, ErrNotFound
	}
	return coupons, nil
}

// Validate проверяет код для продукта: совпадение имени (с учётом регистра),
// продукт, пользователь (или общий купон), is_valid и срок действия.
func (s *CouponService) Validate(ctx context.Context, code string, productID int, userID *int) (*models.Coupon, error) {
	if strings.TrimSpace(code) == "" || productID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.FindValid(ctx, code, productID, userID, s.now().UTC())
}
