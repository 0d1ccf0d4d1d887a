package models

type LikedGame struct {
	ID        int      `json:"liked_id"`
	UserID    int      `json:"user_id"`
	ProductID int      `json:"product_id"`
	Product   *Product `json:"product,omitempty"`
}

type LikeGameRequest struct {
	ProductID int `json:"product_id"`
}
