package models

type SystemStats struct {
	TotalUsers     int `json:"total_users"`
	Superusers     int `json:"superusers"`
	ActiveUsers    int `json:"active_users"`
	ProductsCount  int `json:"products_count"`
	OrdersCount    int `json:"orders_count"`
	PendingOrders  int `json:"pending_orders"`
	LikesCount     int `json:"likes_count"`
	ActiveUsersPct int `json:"active_users_pct"`
}
