package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"go.uber.org/zap"
)

type ProductRepo interface {
	List(ctx context.Context, f models.ProductFilter) ([]models.Product, error)
	ListAfter(ctx context.Context, afterID, limit int) ([]models.Product, error)
	Favorites(ctx context.Context, limit int) ([]models.Product, error)
	Search(ctx context.Context, text string, limit int) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Exists(ctx context.Context, id int) (bool, error)
	Related(ctx context.Context, p *models.Product, limit int) ([]models.Product, error)
	Variants(ctx context.Context, productID int) ([]models.GameDetail, error)
	GetGameDetail(ctx context.Context, id int) (*models.GameDetail, error)
}

const (
	DefaultPageSize      = 10
	DefaultFavoritesSize = 20
	DefaultSearchSize    = 20
	DefaultRelatedSize   = 10
	MaxPageSize          = 100
)

// clampLimit - limit <= 0 даёт значение по умолчанию, сверху режется MaxPageSize.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

type ProductService struct {
	repo ProductRepo
}

func NewProductService(repo ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) List(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	logger.Log.Debug("Список продуктов (service)", zap.String("search", f.Search))
	return s.repo.List(ctx, f)
}

func (s *ProductService) Page(ctx context.Context, afterID, limit int) ([]models.Product, error) {
	return s.repo.ListAfter(ctx, afterID, clampLimit(limit, DefaultPageSize))
}

func (s *ProductService) Favorites(ctx context.Context, limit int) ([]models.Product, error) {
	return s.repo.Favorites(ctx, clampLimit(limit, DefaultFavoritesSize))
}

func (s *ProductService) Search(ctx context.Context, q string, limit int) ([]models.Product, error) {
	if strings.TrimSpace(q) == "" {
		return []models.Product{}, nil
	}
	return s.repo.Search(ctx, q, clampLimit(limit, DefaultSearchSize))
}

// Detail собирает карточку продукта: минимальную ненулевую цену, суммарный
// остаток и по одной (самой дешёвой) комбинации на консоль/лицензию/срок.
func (s *ProductService) Detail(ctx context.Context, id int) (*models.ProductDetail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	variants, err := s.repo.Variants(ctx, id)
	if err != nil {
		logger.Log.Error("Ошибка получения комбинаций продукта", zap.Int("product_id", id), zap.Error(err))
		return nil, err
	}

	d := &models.ProductDetail{Product: *p, Variants: make([]models.GameDetail, 0, len(variants))}
	seen := make(map[string]bool, len(variants))
	for i := range variants {
		v := variants[i]
		if v.Stock > 0 {
			d.TotalStock += v.Stock
		}
		if v.Price > 0 && (d.Price == nil || v.Price < *d.Price) {
			price, orig := v.Price, v.OriginalPrice
			d.Price, d.OriginalPrice = &price, &orig
		}
		key := optInt(v.ConsoleID) + "|" + optInt(v.LicenseID) + "|" + optInt(v.RentalDays)
		if seen[key] {
			continue
		}
		seen[key] = true
		d.Variants = append(d.Variants, v)
	}
	// бесплатные (цена 0) - в конец
	sort.SliceStable(d.Variants, func(i, j int) bool {
		a, b := d.Variants[i].Price, d.Variants[j].Price
		if (a == 0) != (b == 0) {
			return b == 0
		}
		return a < b
	})
	return d, nil
}

// Related - продукты того же типа игры. Неизвестный продукт даёт пустой список.
func (s *ProductService) Related(ctx context.Context, id, limit int) ([]models.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return []models.Product{}, nil
		}
		return nil, err
	}
	return s.repo.Related(ctx, p, clampLimit(limit, DefaultRelatedSize))
}

// CombinationPrices склеивает комбинации в наличии с одинаковыми
// характеристиками и ценой, суммируя остаток.
func (s *ProductService) CombinationPrices(ctx context.Context, id int) (*models.CombinationPrices, error) {
	res := &models.CombinationPrices{ProductID: id, Items: make([]models.PriceCombination, 0)}
	p, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		res.ProductType = p.TypeID
	case !isNotFound(err):
		return nil, err
	}

	variants, err := s.repo.Variants(ctx, id)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	for _, v := range variants {
		if v.Stock <= 0 || v.Price <= 0 {
			continue
		}
		c := models.PriceCombination{
			PK:            v.ID,
			ConsoleID:     v.ConsoleID,
			ConsoleName:   optString(v.ConsoleName),
			LicenseID:     v.LicenseID,
			LicenseName:   optString(v.LicenseName),
			Stock:         v.Stock,
			Price:         v.Price,
			OriginalPrice: v.OriginalPrice,
			RentalDays:    v.RentalDays,
		}
		key := strings.Join([]string{
			optInt(c.ConsoleID), c.ConsoleName, optInt(c.LicenseID), c.LicenseName,
			optInt(c.RentalDays), strconv.Itoa(c.Price), strconv.Itoa(c.OriginalPrice),
		}, "|")
		if i, ok := index[key]; ok {
			res.Items[i].Stock += c.Stock
			continue
		}
		index[key] = len(res.Items)
		res.Items = append(res.Items, c)
	}
	return res, nil
}

func optInt(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func optString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
