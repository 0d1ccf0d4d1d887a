package services

import (
	"context"
	"strings"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type OrderRepo interface {
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]models.Order, int, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
	Create(ctx context.Context, o *models.Order) error
	Update(ctx context.Context, id int, status, filePath, description *string) error
	Delete(ctx context.Context, id int) error
}

type gameDetailGetter interface {
	GetGameDetail(ctx context.Context, id int) (*models.GameDetail, error)
}

const AdminOrdersPageSize = 20

type OrderService struct {
	repo    OrderRepo
	details gameDetailGetter
	policy  *bluemonday.Policy
}

func NewOrderService(repo OrderRepo, details gameDetailGetter) *OrderService {
	return &OrderService{repo: repo, details: details, policy: bluemonday.StrictPolicy()}
}

type OrderPage struct {
	Orders []models.Order `json:"orders"`
	Page   int            `json:"page"`
	Total  int            `json:"total"`
}

func (s *OrderService) ListMine(ctx context.Context, caller *models.User) ([]models.Order, error) {
	return s.repo.ListByUser(ctx, caller.ID)
}

// ListAll - все заказы постранично, только для суперпользователя.
func (s *OrderService) ListAll(ctx context.Context, caller *models.User, page int) (*OrderPage, error) {
	if !caller.IsSuperuser {
		logger.Log.Warn("Список всех заказов без прав суперпользователя", zap.Int("user_id", caller.ID))
		return nil, ErrForbidden
	}
	if page < 1 {
		page = 1
	}
	orders, total, err := s.repo.ListAll(ctx, AdminOrdersPageSize, (page-1)*AdminOrdersPageSize)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Orders: orders, Page: page, Total: total}, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, caller *models.User, in models.OrderInput) (*models.Order, error) {
	if in.ProductID <= 0 {
		return nil, ErrInvalidInput
	}
	if _, err := s.details.GetGameDetail(ctx, in.ProductID); err != nil {
		return nil, err
	}

	o := &models.Order{
		UserID:      caller.ID,
		ProductID:   in.ProductID,
		Status:      models.OrderStatusPending,
		FilePath:    in.FilePath,
		Description: s.sanitize(in.Description),
	}
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		o.Status = strings.TrimSpace(*in.Status)
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	logger.Log.Info("Заказ создан", zap.Int("order_id", o.ID), zap.Int("user_id", caller.ID))
	return s.repo.GetByID(ctx, o.ID)
}

func (s *OrderService) Update(ctx context.Context, caller *models.User, id int, in models.OrderInput) (*models.Order, error) {
	if err := s.authorize(ctx, caller, id); err != nil {
		return nil, err
	}
	var status *string
	if in.Status != nil && strings.TrimSpace(*in.Status) != "" {
		v := strings.TrimSpace(*in.Status)
		status = &v
	}
	if err := s.repo.Update(ctx, id, status, in.FilePath, s.sanitize(in.Description)); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, caller *models.User, id int) error {
	if err := s.authorize(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorize - менять заказ может владелец или суперпользователь.
func (s *OrderService) authorize(ctx context.Context, caller *models.User, id int) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.UserID != caller.ID && !caller.IsSuperuser {
		logger.Log.Warn("Попытка изменить чужой заказ", zap.Int("user_id", caller.ID), zap.Int("order_id", id))
		return ErrForbidden
	}
	return nil
}

func (s *OrderService) sanitize(in *string) *string {
	if in == nil {
		return nil
	}
	v := strings.TrimSpace(s.policy.Sanitize(*in))
	return &v
}
