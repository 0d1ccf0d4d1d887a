package repository

import (
	"context"
	"fmt"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"go.uber.org/zap"
)

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderSelect = `
	SELECT o.id_order, o.user_id, o.product_id, o.status, o.file_path, o.description_order,
		g.id_game_detail, p.id_product, p.title, p.description, p.image
	FROM order_buy o
	LEFT JOIN products_gamedetail g ON g.id_game_detail = o.product_id
	LEFT JOIN products_products p ON p.id_product = g.producto_id`

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		o            models.Order
		gameDetailID *int
		productID    *int
		title        *string
		description  *string
		image        *string
	)
	err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Status, &o.FilePath, &o.Description,
		&gameDetailID, &productID, &title, &description, &image)
	if err != nil {
		return nil, err
	}
	if gameDetailID != nil && productID != nil {
		o.Product = &models.OrderProduct{GameDetailID: *gameDetailID, ProductID: *productID, Image: image}
		if title != nil {
			o.Product.Title = *title
		}
		if description != nil {
			o.Product.Description = *description
		}
	}
	return &o, nil
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Log.Error("Ошибка получения заказов (repo)", zap.Error(err))
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	return r.list(ctx, orderSelect+` WHERE o.user_id = $1 ORDER BY o.id_order DESC`, userID)
}

// ListAll - все заказы, новые первыми. Возвращает также общее количество.
func (r *OrderRepository) ListAll(ctx context.Context, limit, offset int) ([]models.Order, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM order_buy`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}
	orders, err := r.list(ctx, orderSelect+` ORDER BY o.id_order DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.id_order = $1`, id))
	if err != nil {
		return nil, notFound(err, "get order")
	}
	return o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	logger.Log.Info("Создание заказа (repo)", zap.Int("user_id", o.UserID), zap.Int("game_detail_id", o.ProductID))
	query := `
	INSERT INTO order_buy (user_id, product_id, status, file_path, description_order)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id_order`
	err := r.db.QueryRow(ctx, query, o.UserID, o.ProductID, o.Status, o.FilePath, o.Description).Scan(&o.ID)
	if err != nil {
		logger.Log.Error("Ошибка создания заказа (repo)", zap.Error(err))
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// Update меняет только переданные (не nil) поля.
func (r *OrderRepository) Update(ctx context.Context, id int, status, filePath, description *string) error {
	query := `
	UPDATE order_buy SET
		status = COALESCE($1, status),
		file_path = COALESCE($2, file_path),
		description_order = COALESCE($3, description_order)
	WHERE id_order = $4`
	tag, err := r.db.Exec(ctx, query, status, filePath, description, id)
	if err != nil {
		logger.Log.Error("Ошибка обновления заказа (repo)", zap.Int("order_id", id), zap.Error(err))
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update order: %w", models.ErrNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM order_buy WHERE id_order = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete order: %w", models.ErrNotFound)
	}
	return nil
}
