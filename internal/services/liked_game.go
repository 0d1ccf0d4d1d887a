package services

import (
	"context"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"go.uber.org/zap"
)

type LikedGameRepo interface {
	ListByUser(ctx context.Context, userID int) ([]models.LikedGame, error)
	ProductIDsByUser(ctx context.Context, userID int) ([]int, error)
	Find(ctx context.Context, userID, productID int) (*models.LikedGame, error)
	Create(ctx context.Context, l *models.LikedGame) error
	Delete(ctx context.Context, userID, productID int) error
}

type productChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type LikedGameService struct {
	repo     LikedGameRepo
	products productChecker
}

func NewLikedGameService(repo LikedGameRepo, products productChecker) *LikedGameService {
	return &LikedGameService{repo: repo, products: products}
}

func (s *LikedGameService) ListByUser(ctx context.Context, userID int) ([]models.LikedGame, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Like идемпотентен: повторный лайк возвращает существующую запись и created=false.
func (s *LikedGameService) Like(ctx context.Context, userID, productID int) (*models.LikedGame, bool, error) {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, ErrNotFound
	}

	existing, err := s.repo.Find(ctx, userID, productID)
	if err == nil {
		return existing, false, nil
	}
	if !isNotFound(err) {
		return nil, false, err
	}

	l := &models.LikedGame{UserID: userID, ProductID: productID}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, false, err
	}
	logger.Log.Info("Игра добавлена в избранное", zap.Int("user_id", userID), zap.Int("product_id", productID))
	return l, true, nil
}

func (s *LikedGameService) Unlike(ctx context.Context, userID, productID int) error {
	return s.repo.Delete(ctx, userID, productID)
}
