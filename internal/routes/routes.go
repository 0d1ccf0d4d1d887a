package routes

import (
	"net/http"
	"time"

	"gamestore/internal/handlers"
	"gamestore/internal/middleware"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Password *handlers.PasswordHandler
	Product  *handlers.ProductHandler
	Liked    *handlers.LikedGameHandler
	Coupon   *handlers.CouponHandler
	Cart     *handlers.CartHandler
	Order    *handlers.OrderHandler
	Health   *handlers.HealthHandler
	Logs     *handlers.AdminLogsHandler
}

type Limits struct {
	LoginPerMinute int
	ForgotPerHour  int
	TrustedProxies middleware.TrustedProxies
}

func InitRoutes(router *mux.Router, h Handlers, auth middleware.Authenticator, limits Limits) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging)

	jwt := middleware.JWTAuth(auth)
	protected := func(f http.HandlerFunc) http.Handler { return jwt(f) }
	admin := func(f http.HandlerFunc) http.Handler { return jwt(middleware.OnlySuperuser(f)) }
	loginLimit := middleware.RateLimit(limits.LoginPerMinute, time.Minute, limits.TrustedProxies)
	forgotLimit := middleware.RateLimit(limits.ForgotPerHour, time.Hour, limits.TrustedProxies)

	router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// --- auth ---
	router.HandleFunc("/auth/register", h.Auth.Register).Methods(http.MethodPost)
	router.Handle("/auth/login", loginLimit(http.HandlerFunc(h.Auth.Login))).Methods(http.MethodPost)
	router.Handle("/auth/refresh", protected(h.Auth.Refresh)).Methods(http.MethodPost)
	router.Handle("/auth/me", protected(h.Auth.Me)).Methods(http.MethodGet)
	router.Handle("/auth/forgot-password", forgotLimit(http.HandlerFunc(h.Password.Forgot))).Methods(http.MethodPost)
	router.HandleFunc("/auth/reset-password", h.Password.Reset).Methods(http.MethodPost)
	router.Handle("/auth/change-password", protected(h.Password.Change)).Methods(http.MethodPost)

	// --- products ---
	router.HandleFunc("/products", h.Product.List).Methods(http.MethodGet)
	router.HandleFunc("/products/pagination", h.Product.Page).Methods(http.MethodGet)
	router.HandleFunc("/products/favorites", h.Product.Favorites).Methods(http.MethodGet)
	router.HandleFunc("/products/search", h.Product.Search).Methods(http.MethodGet)
	router.HandleFunc("/products/by-type/{id:[0-9]+}", h.Product.ByType).Methods(http.MethodGet)
	router.HandleFunc("/products/by-game-type/{id:[0-9]+}", h.Product.ByGameType).Methods(http.MethodGet)
	router.HandleFunc("/products/by-console/{id:[0-9]+}", h.Product.ByConsole).Methods(http.MethodGet)
	router.HandleFunc("/products/combination-price/{id:[0-9]+}", h.Product.CombinationPrices).Methods(http.MethodGet)
	router.HandleFunc("/products/coupon/{code}", h.Coupon.Validate).Methods(http.MethodGet)
	router.HandleFunc("/products/{id:[0-9]+}", h.Product.Detail).Methods(http.MethodGet)
	router.HandleFunc("/products/{id:[0-9]+}/related", h.Product.Related).Methods(http.MethodGet)

	// --- liked games ---
	router.HandleFunc("/liked-games/{user_id:[0-9]+}", h.Liked.ListByUser).Methods(http.MethodGet)
	router.Handle("/liked-games", protected(h.Liked.Like)).Methods(http.MethodPost)
	router.Handle("/liked-games/{product_id:[0-9]+}", protected(h.Liked.Unlike)).Methods(http.MethodDelete)

	// --- coupons ---
	router.HandleFunc("/coupons/{name}", h.Coupon.GetByName).Methods(http.MethodGet)

	// --- shopping car ---
	router.Handle("/shopping-car", protected(h.Cart.List)).Methods(http.MethodGet)
	router.Handle("/shopping-car", protected(h.Cart.Add)).Methods(http.MethodPost)
	router.Handle("/shopping-car/{id:[0-9]+}", protected(h.Cart.Get)).Methods(http.MethodGet)
	router.Handle("/shopping-car/{id:[0-9]+}", protected(h.Cart.Delete)).Methods(http.MethodDelete)
	router.Handle("/shopping-car/{product_id:[0-9]+}", protected(h.Cart.UpdateEstado)).Methods(http.MethodPut)

	// --- orders ---
	router.Handle("/order-buy", protected(h.Order.ListMine)).Methods(http.MethodGet)
	router.Handle("/order-buy", protected(h.Order.Create)).Methods(http.MethodPost)
	router.Handle("/order-buy/admin", admin(h.Order.ListAll)).Methods(http.MethodGet)
	router.HandleFunc("/order-buy/{id:[0-9]+}", h.Order.Get).Methods(http.MethodGet)
	router.Handle("/order-buy/{id:[0-9]+}", protected(h.Order.Update)).Methods(http.MethodPut)
	router.Handle("/order-buy/{id:[0-9]+}", protected(h.Order.Delete)).Methods(http.MethodDelete)

	// --- admin ---
	router.Handle("/admin/stats", admin(h.Auth.Stats)).Methods(http.MethodGet)
	router.Handle("/admin/logs", admin(h.Logs.GetLogs)).Methods(http.MethodGet)
	router.Handle("/admin/logs/days", admin(h.Logs.ListDays)).Methods(http.MethodGet)
	router.Handle("/admin/logs/summary", admin(h.Logs.Summary)).Methods(http.MethodGet)
}
