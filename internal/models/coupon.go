package models

import "time"

type Coupon struct {
	ID             int        `json:"id_coupon"`
	Name           string     `json:"name_coupon"`
	CreatedAt      *time.Time `json:"created_at"`
	ModifiedAt     *time.Time `json:"modified_at"`
	ExpirationDate *time.Time `json:"expiration_date"`
	IsValid        bool       `json:"is_valid"`
	UserID         *int       `json:"user_id"`
	ProductID      *int       `json:"product_id"`
	PercentageOff  int        `json:"percentage_off"`
	PointsGiven    int        `json:"points_given"`
}
