package repository

import (
	"context"
	"fmt"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"go.uber.org/zap"
)

type CartRepository struct {
	db DB
}

func NewCartRepository(db DB) *CartRepository {
	return &CartRepository{db: db}
}

// product_id корзины ссылается на products_gamedetail, цена берётся оттуда
const cartSelect = `
	SELECT s.id_shopping_car, s.user_id, s.product_id, s.estado, g.precio
	FROM shopping_car s
	LEFT JOIN products_gamedetail g ON g.id_game_detail = s.product_id`

func scanCartItem(row rowScanner) (*models.CartItem, error) {
	var c models.CartItem
	if err := row.Scan(&c.ID, &c.UserID, &c.ProductID, &c.Estado, &c.ProductPrice); err != nil {
		return nil, err
	}
	return &c, nil
}

// List - позиции корзины пользователя; estado == nil - без фильтра по состоянию.
func (r *CartRepository) List(ctx context.Context, userID int, estado *bool) ([]models.CartItem, error) {
	query := cartSelect + ` WHERE s.user_id = $1`
	args := []any{userID}
	if estado != nil {
		query += ` AND s.estado = $2`
		args = append(args, *estado)
	}
	query += ` ORDER BY s.id_shopping_car`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Log.Error("Ошибка получения корзины (repo)", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("query cart: %w", err)
	}
	defer rows.Close()

	items := make([]models.CartItem, 0)
	for rows.Next() {
		c, err := scanCartItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

func (r *CartRepository) GetByID(ctx context.Context, id int) (*models.CartItem, error) {
	c, err := scanCartItem(r.db.QueryRow(ctx, cartSelect+` WHERE s.id_shopping_car = $1`, id))
	if err != nil {
		return nil, notFound(err, "get cart item")
	}
	return c, nil
}

func (r *CartRepository) Create(ctx context.Context, c *models.CartItem) error {
	logger.Log.Info("Добавление в корзину (repo)", zap.Int("user_id", c.UserID), zap.Int("product_id", c.ProductID))
	query := `
	WITH ins AS (
		INSERT INTO shopping_car (user_id, product_id, estado) VALUES ($1, $2, $3)
		RETURNING id_shopping_car, product_id
	)
	SELECT ins.id_shopping_car, g.precio
	FROM ins
	LEFT JOIN products_gamedetail g ON g.id_game_detail = ins.product_id`
	err := r.db.QueryRow(ctx, query, c.UserID, c.ProductID, c.Estado).Scan(&c.ID, &c.ProductPrice)
	if err != nil {
		logger.Log.Error("Ошибка добавления в корзину (repo)", zap.Error(err))
		return fmt.Errorf("create cart item: %w", err)
	}
	return nil
}

// UpdateEstado меняет состояние первой позиции пользователя с этой
// комбинацией и возвращает её.
func (r *CartRepository) UpdateEstado(ctx context.Context, userID, productID int, estado bool) (*models.CartItem, error) {
	query := `
	WITH upd AS (
		UPDATE shopping_car SET estado = $1
		WHERE id_shopping_car = (
			SELECT id_shopping_car FROM shopping_car
			WHERE user_id = $2 AND product_id = $3
			ORDER BY id_shopping_car LIMIT 1
		)
		RETURNING id_shopping_car, user_id, product_id, estado
	)
	SELECT upd.id_shopping_car, upd.user_id, upd.product_id, upd.estado, g.precio
	FROM upd
	LEFT JOIN products_gamedetail g ON g.id_game_detail = upd.product_id`
	c, err := scanCartItem(r.db.QueryRow(ctx, query, estado, userID, productID))
	if err != nil {
		return nil, notFound(err, "update cart")
	}
	return c, nil
}

func (r *CartRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_car WHERE id_shopping_car = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete cart item: %w", models.ErrNotFound)
	}
	return nil
}
