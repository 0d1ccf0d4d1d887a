package models

const OrderStatusPending = "pending"

type Order struct {
	ID          int           `json:"id_order"`
	UserID      int           `json:"user_id"`
	ProductID   int           `json:"product_id"`
	Status      string        `json:"status"`
	FilePath    *string       `json:"file_path"`
	Description *string       `json:"description_order,omitempty"`
	Product     *OrderProduct `json:"product"`
}

type OrderProduct struct {
	GameDetailID int     `json:"id_game_detail"`
	ProductID    int     `json:"id_product"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Image        *string `json:"image"`
}

type OrderInput struct {
	ProductID   int
	Status      *string
	FilePath    *string
	Description *string
}
