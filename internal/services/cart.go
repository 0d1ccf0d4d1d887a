package services

import (
	"context"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"go.uber.org/zap"
)

type CartRepo interface {
	List(ctx context.Context, userID int, estado *bool) ([]models.CartItem, error)
	GetByID(ctx context.Context, id int) (*models.CartItem, error)
	Create(ctx context.Context, c *models.CartItem) error
	UpdateEstado(ctx context.Context, userID, productID int, estado bool) (*models.CartItem, error)
	Delete(ctx context.Context, id int) error
}

type CartService struct {
	repo CartRepo
}

func NewCartService(repo CartRepo) *CartService {
	return &CartService{repo: repo}
}

// List - корзина пользователя. Чужую корзину (userID != caller) видит
// только суперпользователь.
func (s *CartService) List(ctx context.Context, caller *models.User, userID *int, estado *bool) ([]models.CartItem, error) {
	target := caller.ID
	if userID != nil && *userID != caller.ID {
		if !caller.IsSuperuser {
			logger.Log.Warn("Попытка чтения чужой корзины", zap.Int("user_id", caller.ID), zap.Int("target", *userID))
			return nil, ErrForbidden
		}
		target = *userID
	}
	return s.repo.List(ctx, target, estado)
}

// Get отдаёт только собственную позицию; чужая выглядит как отсутствующая.
func (s *CartService) Get(ctx context.Context, caller *models.User, id int) (*models.CartItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != caller.ID {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *CartService) Add(ctx context.Context, caller *models.User, req models.CartCreateRequest) (*models.CartItem, error) {
	if req.ProductID <= 0 {
		return nil, ErrInvalidInput
	}
	item := &models.CartItem{UserID: caller.ID, ProductID: req.ProductID, Estado: true}
	if req.Estado != nil {
		item.Estado = *req.Estado
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) UpdateEstado(ctx context.Context, caller *models.User, productID int, req models.CartUpdateRequest) (*models.CartItem, error) {
	if req.Estado == nil {
		return nil, ErrInvalidInput
	}
	return s.repo.UpdateEstado(ctx, caller.ID, productID, *req.Estado)
}

func (s *CartService) Delete(ctx context.Context, caller *models.User, id int) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
