package models

type CartItem struct {
	ID           int  `json:"id_shopping_car"`
	UserID       int  `json:"user_id"`
	ProductID    int  `json:"product_id"`
	Estado       bool `json:"estado"`
	ProductPrice *int `json:"product_price"`
}

type CartCreateRequest struct {
	ProductID int   `json:"product_id"`
	Estado    *bool `json:"estado,omitempty"`
}

type CartUpdateRequest struct {
	Estado *bool `json:"estado"`
}
