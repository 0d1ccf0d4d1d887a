package repository

import (
	"context"
	"fmt"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"go.uber.org/zap"
)

type LikedGameRepository struct {
	db DB
}

func NewLikedGameRepository(db DB) *LikedGameRepository {
	return &LikedGameRepository{db: db}
}

// ListByUser - лайки пользователя вместе с карточкой продукта.
func (r *LikedGameRepository) ListByUser(ctx context.Context, userID int) ([]models.LikedGame, error) {
	query := `
	SELECT l.id, l.user_id, l.product_id, p.title, p.description, p.image, p.calification, p.destacado
	FROM liked_games l
	JOIN products_products p ON p.id_product = l.product_id
	WHERE l.user_id = $1
	ORDER BY l.id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		logger.Log.Error("Ошибка получения лайков (repo)", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("query liked games: %w", err)
	}
	defer rows.Close()

	liked := make([]models.LikedGame, 0)
	for rows.Next() {
		var (
			l models.LikedGame
			p models.Product
		)
		if err := rows.Scan(&l.ID, &l.UserID, &l.ProductID, &p.Title, &p.Description, &p.Image, &p.Calification, &p.Destacado); err != nil {
			return nil, fmt.Errorf("scan liked game: %w", err)
		}
		p.ID = l.ProductID
		l.Product = &p
		liked = append(liked, l)
	}
	return liked, rows.Err()
}

// ProductIDsByUser - id лайкнутых продуктов, зашиваются в session-токен.
func (r *LikedGameRepository) ProductIDsByUser(ctx context.Context, userID int) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT product_id FROM liked_games WHERE user_id = $1 ORDER BY product_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query liked ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan liked id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *LikedGameRepository) Find(ctx context.Context, userID, productID int) (*models.LikedGame, error) {
	var l models.LikedGame
	err := r.db.QueryRow(ctx, `SELECT id, user_id, product_id FROM liked_games WHERE user_id = $1 AND product_id = $2`,
		userID, productID).Scan(&l.ID, &l.UserID, &l.ProductID)
	if err != nil {
		return nil, notFound(err, "find liked game")
	}
	return &l, nil
}

func (r *LikedGameRepository) Create(ctx context.Context, l *models.LikedGame) error {
	logger.Log.Info("Добавление лайка (repo)", zap.Int("user_id", l.UserID), zap.Int("product_id", l.ProductID))
	err := r.db.QueryRow(ctx, `INSERT INTO liked_games (user_id, product_id) VALUES ($1, $2) RETURNING id`,
		l.UserID, l.ProductID).Scan(&l.ID)
	if err != nil {
		logger.Log.Error("Ошибка добавления лайка (repo)", zap.Error(err))
		return fmt.Errorf("create liked game: %w", err)
	}
	return nil
}

func (r *LikedGameRepository) Delete(ctx context.Context, userID, productID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM liked_games WHERE user_id = $1 AND product_id = $2`, userID, productID)
	if err != nil {
		return fmt.Errorf("delete liked game: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete liked game: %w", models.ErrNotFound)
	}
	return nil
}
