package app

import (
	"context"
	"fmt"

	"gamestore/internal/config"
	"gamestore/internal/db"
	"gamestore/internal/handlers"
	"gamestore/internal/logger"
	"gamestore/internal/middleware"
	"gamestore/internal/repository"
	"gamestore/internal/routes"
	"gamestore/internal/security"
	"gamestore/internal/services"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	emailQueueSize   = 100
	emailWorkers     = 3
	logRetentionDays = 7
	logDir           = "logs"
)

type App struct {
	Router *mux.Router
	pool   *pgxpool.Pool
	emails *services.EmailQueue
}

func InitApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.DbAutoMigrate {
		if err := db.RunMigrations(ctx, cfg.GetDSN()); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}

	pool, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	tokens, err := security.NewTokenService(cfg.SecurityKeys())
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("token service: %w", err)
	}
	hasher := security.NewHasher(cfg.PasswordHashRounds)

	// Репозитории
	userRepo := repository.NewUserRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	likedRepo := repository.NewLikedGameRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	a := &App{pool: pool}

	// Почта нужна только для ссылок сброса пароля
	var mailer services.PasswordResetMailer
	emailService := services.NewEmailService(cfg)
	if emailService.Enabled() {
		a.emails = services.NewEmailQueue(emailService, emailQueueSize, cfg.FrontendURL, int(tokens.ResetMaxAge().Seconds()))
		a.emails.Start(emailWorkers)
		mailer = a.emails
	} else {
		logger.Log.Warn("SMTP не настроен, письма сброса пароля не отправляются")
	}

	// Сервисы
	authService := services.NewAuthService(userRepo, likedRepo, hasher, tokens)
	passwordService := services.NewPasswordService(userRepo, hasher, tokens, mailer, cfg.ResetTokenInResponse)
	productService := services.NewProductService(productRepo)
	likedService := services.NewLikedGameService(likedRepo, productRepo)
	couponService := services.NewCouponService(couponRepo)
	cartService := services.NewCartService(cartRepo)
	orderService := services.NewOrderService(orderRepo, productRepo)

	// Хендлеры
	h := routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Password: handlers.NewPasswordHandler(passwordService),
		Product:  handlers.NewProductHandler(productService),
		Liked:    handlers.NewLikedGameHandler(likedService),
		Coupon:   handlers.NewCouponHandler(couponService),
		Cart:     handlers.NewCartHandler(cartService),
		Order:    handlers.NewOrderHandler(orderService),
		Health:   handlers.NewHealthHandler(pool),
		Logs:     handlers.NewAdminLogsHandler(logDir, logRetentionDays),
	}

	a.Router = mux.NewRouter()
	routes.InitRoutes(a.Router, h, authService, routes.Limits{
		LoginPerMinute: cfg.LoginRateLimitPerMin,
		ForgotPerHour:  cfg.ForgotRateLimitPerHour,
		TrustedProxies: proxies,
	})

	logger.Log.Info("Приложение инициализировано",
		zap.Duration("access_ttl", tokens.SessionTTL()),
		zap.Duration("reset_max_age", tokens.ResetMaxAge()),
		zap.Bool("smtp", emailService.Enabled()),
	)
	return a, nil
}

// Close дожидается отправки писем из очереди и закрывает пул.
func (a *App) Close() {
	if a.emails != nil {
		a.emails.Close()
	}
	a.pool.Close()
}
