package repository

import (
	"context"
	"fmt"
	"time"

	"gamestore/internal/models"
)

type CouponRepository struct {
	db DB
}

func NewCouponRepository(db DB) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponSelect = `
	SELECT id_coupon, name_coupon, created_at, modified_at, expiration_date, is_valid, user_id, product_id, percentage_off, points_given
	FROM coupons`

func scanCoupon(row rowScanner) (*models.Coupon, error) {
	var c models.Coupon
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.CreatedAt,
		&c.ModifiedAt,
		&c.ExpirationDate,
		&c.IsValid,
		&c.UserID,
		&c.ProductID,
		&c.PercentageOff,
		&c.PointsGiven,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByName - все купоны с таким именем (имя не уникально).
func (r *CouponRepository) ListByName(ctx context.Context, name string) ([]models.Coupon, error) {
	rows, err := r.db.Query(ctx, couponSelect+` WHERE name_coupon = $1 ORDER BY id_coupon`, name)
	if err != nil {
		return nil, fmt.Errorf("query coupons: %w", err)
	}
	defer rows.Close()

	coupons := make([]models.Coupon, 0)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		coupons = append(coupons, *c)
	}
	return coupons, rows.Err()
}

// FindValid ищет действующий купон для продукта: общий (user_id IS NULL)
// или выданный этому пользователю.
func (r *CouponRepository) FindValid(ctx context.Context, code string, productID int, userID *int, now time.Time) (*models.Coupon, error) {
	query := couponSelect + `
	WHERE name_coupon = $1
		AND product_id = $2
		AND is_valid
		AND expiration_date > $3
		AND (user_id IS NULL OR user_id = $4)
	ORDER BY id_coupon
	LIMIT 1`
	c, err := scanCoupon(r.db.QueryRow(ctx, query, code, productID, now, userID))
	if err != nil {
		return nil, notFound(err, "find valid coupon")
	}
	return c, nil
}
