package services

import (
	"context"
	"testing"
	"time"

	"gamestore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ip(v int) *int       { return &v }
func sp(v string) *string { return &v }

type mockProductRepo struct {
	products  map[int]*models.Product
	variants  map[int][]models.GameDetail
	lastLimit int
}

func (m *mockProductRepo) List(_ context.Context, _ models.ProductFilter) ([]models.Product, error) {
	return []models.Product{}, nil
}

func (m *mockProductRepo) ListAfter(_ context.Context, _, limit int) ([]models.Product, error) {
	m.lastLimit = limit
	return []models.Product{}, nil
}

func (m *mockProductRepo) Favorites(_ context.Context, limit int) ([]models.Product, error) {
	m.lastLimit = limit
	return []models.Product{}, nil
}

func (m *mockProductRepo) Search(_ context.Context, _ string, limit int) ([]models.Product, error) {
	m.lastLimit = limit
	return []models.Product{{ID: 1}}, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.products[id]
	return ok, nil
}

func (m *mockProductRepo) Related(_ context.Context, _ *models.Product, limit int) ([]models.Product, error) {
	m.lastLimit = limit
	return []models.Product{{ID: 2}}, nil
}

func (m *mockProductRepo) Variants(_ context.Context, productID int) ([]models.GameDetail, error) {
	return m.variants[productID], nil
}

func (m *mockProductRepo) GetGameDetail(_ context.Context, id int) (*models.GameDetail, error) {
	for _, vs := range m.variants {
		for i := range vs {
			if vs[i].ID == id {
				return &vs[i], nil
			}
		}
	}
	return nil, models.ErrNotFound
}

func newProductRepo() *mockProductRepo {
	return &mockProductRepo{
		products: map[int]*models.Product{1: {ID: 1, Title: "Halo", TypeID: ip(2)}},
		variants: map[int][]models.GameDetail{1: {
			{ID: 10, ProductID: 1, ConsoleID: ip(1), ConsoleName: sp("Xbox"), Price: 0, Stock: 5},
			{ID: 11, ProductID: 1, ConsoleID: ip(2), ConsoleName: sp("PC"), Price: 59, OriginalPrice: 79, Stock: 2},
			{ID: 12, ProductID: 1, ConsoleID: ip(2), ConsoleName: sp("PC"), Price: 59, OriginalPrice: 79, Stock: 3},
			{ID: 13, ProductID: 1, ConsoleID: ip(3), ConsoleName: sp("PS5"), Price: 49, Stock: 0},
			{ID: 14, ProductID: 1, ConsoleID: ip(3), ConsoleName: sp("PS5"), Price: 69, Stock: -1},
		}},
	}
}

func TestProductService_Detail(t *testing.T) {
	svc := NewProductService(newProductRepo())

	d, err := svc.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Halo", d.Title)
	require.NotNil(t, d.Price)
	assert.Equal(t, 49, *d.Price)
	assert.Equal(t, 10, d.TotalStock)

	ids := make([]int, 0, len(d.Variants))
	for _, v := range d.Variants {
		ids = append(ids, v.ID)
	}
	// по одной на консоль, бесплатная в конце
	assert.Equal(t, []int{13, 11, 10}, ids)

	_, err = svc.Detail(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_CombinationPrices(t *testing.T) {
	svc := NewProductService(newProductRepo())

	res, err := svc.CombinationPrices(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, *res.ProductType)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 11, res.Items[0].PK)
	assert.Equal(t, 5, res.Items[0].Stock)
	assert.Equal(t, "PC", res.Items[0].ConsoleName)
}

func TestProductService_Limits(t *testing.T) {
	repo := newProductRepo()
	svc := NewProductService(repo)
	ctx := context.Background()

	_, _ = svc.Page(ctx, 0, 0)
	assert.Equal(t, DefaultPageSize, repo.lastLimit)
	_, _ = svc.Page(ctx, 0, 1000)
	assert.Equal(t, MaxPageSize, repo.lastLimit)
	_, _ = svc.Favorites(ctx, 0)
	assert.Equal(t, DefaultFavoritesSize, repo.lastLimit)

	got, err := svc.Search(ctx, "  ", 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	related, err := svc.Related(ctx, 404, 0)
	require.NoError(t, err)
	assert.Empty(t, related)
}

type mockLikedRepo struct {
	likes map[[2]int]*models.LikedGame
	seq   int
}

func (m *mockLikedRepo) ListByUser(_ context.Context, _ int) ([]models.LikedGame, error) {
	return nil, nil
}

func (m *mockLikedRepo) ProductIDsByUser(_ context.Context, _ int) ([]int, error) { return nil, nil }

func (m *mockLikedRepo) Find(_ context.Context, userID, productID int) (*models.LikedGame, error) {
	if l, ok := m.likes[[2]int{userID, productID}]; ok {
		return l, nil
	}
	return nil, models.ErrNotFound
}

func (m *mockLikedRepo) Create(_ context.Context, l *models.LikedGame) error {
	m.seq++
	l.ID = m.seq
	m.likes[[2]int{l.UserID, l.ProductID}] = l
	return nil
}

func (m *mockLikedRepo) Delete(_ context.Context, userID, productID int) error {
	if _, ok := m.likes[[2]int{userID, productID}]; !ok {
		return models.ErrNotFound
	}
	delete(m.likes, [2]int{userID, productID})
	return nil
}

func TestLikedGameService_LikeIsIdempotent(t *testing.T) {
	svc := NewLikedGameService(&mockLikedRepo{likes: map[[2]int]*models.LikedGame{}}, newProductRepo())
	ctx := context.Background()

	first, created, err := svc.Like(ctx, 7, 1)
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := svc.Like(ctx, 7, 1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, _, err = svc.Like(ctx, 7, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Unlike(ctx, 7, 1))
	assert.ErrorIs(t, svc.Unlike(ctx, 7, 1), ErrNotFound)
}

type mockCartRepo struct {
	items map[int]*models.CartItem
}

func (m *mockCartRepo) List(_ context.Context, userID int, _ *bool) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (m *mockCartRepo) GetByID(_ context.Context, id int) (*models.CartItem, error) {
	if it, ok := m.items[id]; ok {
		return it, nil
	}
	return nil, models.ErrNotFound
}

func (m *mockCartRepo) Create(_ context.Context, c *models.CartItem) error {
	c.ID = len(m.items) + 1
	m.items[c.ID] = c
	return nil
}

func (m *mockCartRepo) UpdateEstado(_ context.Context, userID, productID int, estado bool) (*models.CartItem, error) {
	for _, it := range m.items {
		if it.UserID == userID && it.ProductID == productID {
			it.Estado = estado
			return it, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockCartRepo) Delete(_ context.Context, id int) error {
	delete(m.items, id)
	return nil
}

func TestCartService_Ownership(t *testing.T) {
	repo := &mockCartRepo{items: map[int]*models.CartItem{}}
	svc := NewCartService(repo)
	ctx := context.Background()
	alice := &models.User{ID: 7}
	bob := &models.User{ID: 8}
	admin := &models.User{ID: 1, IsSuperuser: true}

	item, err := svc.Add(ctx, alice, models.CartCreateRequest{ProductID: 10})
	require.NoError(t, err)
	assert.True(t, item.Estado)

	_, err = svc.Get(ctx, bob, item.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, bob, item.ID), ErrNotFound)

	_, err = svc.List(ctx, bob, ip(7), nil)
	assert.ErrorIs(t, err, ErrForbidden)
	items, err := svc.List(ctx, admin, ip(7), nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	off := false
	updated, err := svc.UpdateEstado(ctx, alice, 10, models.CartUpdateRequest{Estado: &off})
	require.NoError(t, err)
	assert.False(t, updated.Estado)
	_, err = svc.UpdateEstado(ctx, alice, 10, models.CartUpdateRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, alice, item.ID))
}

type mockOrderRepo struct {
	orders map[int]*models.Order
	total  int
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID int) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) ListAll(_ context.Context, limit, offset int) ([]models.Order, int, error) {
	m.total = offset
	return []models.Order{}, len(m.orders), nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id int) (*models.Order, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, models.ErrNotFound
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) error {
	o.ID = len(m.orders) + 1
	m.orders[o.ID] = o
	return nil
}

func (m *mockOrderRepo) Update(_ context.Context, id int, status, filePath, description *string) error {
	o := m.orders[id]
	if status != nil {
		o.Status = *status
	}
	if filePath != nil {
		o.FilePath = filePath
	}
	if description != nil {
		o.Description = description
	}
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id int) error {
	delete(m.orders, id)
	return nil
}

func TestOrderService(t *testing.T) {
	repo := &mockOrderRepo{orders: map[int]*models.Order{}}
	svc := NewOrderService(repo, newProductRepo())
	ctx := context.Background()
	alice := &models.User{ID: 7}
	bob := &models.User{ID: 8}
	admin := &models.User{ID: 1, IsSuperuser: true}

	_, err := svc.Create(ctx, alice, models.OrderInput{ProductID: 999})
	assert.ErrorIs(t, err, ErrNotFound)

	o, err := svc.Create(ctx, alice, models.OrderInput{
		ProductID:   11,
		FilePath:    sp("receipt.png"),
		Description: sp(`<script>alert(1)</script>Оплата <b>картой</b>`),
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, "Оплата картой", *o.Description)

	_, err = svc.Update(ctx, bob, o.ID, models.OrderInput{Status: sp("paid")})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, bob, o.ID), ErrForbidden)

	updated, err := svc.Update(ctx, admin, o.ID, models.OrderInput{Status: sp(" paid ")})
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.Status)
	assert.Equal(t, "receipt.png", *updated.FilePath)

	_, err = svc.ListAll(ctx, alice, 1)
	assert.ErrorIs(t, err, ErrForbidden)
	page, err := svc.ListAll(ctx, admin, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 40, repo.total)

	require.NoError(t, svc.Delete(ctx, alice, o.ID))
}

type mockCouponRepo struct {
	coupons []models.Coupon
	gotNow  time.Time
}

func (m *mockCouponRepo) ListByName(_ context.Context, name string) ([]models.Coupon, error) {
	out := []models.Coupon{}
	for _, c := range m.coupons {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCouponRepo) FindValid(_ context.Context, code string, productID int, _ *int, now time.Time) (*models.Coupon, error) {
	m.gotNow = now
	for _, c := range m.coupons {
		if c.Name == code && c.ProductID != nil && *c.ProductID == productID {
			return &c, nil
		}
	}
	return nil, models.ErrNotFound
}

func TestCouponService(t *testing.T) {
	repo := &mockCouponRepo{coupons: []models.Coupon{{ID: 1, Name: "SUMMER", ProductID: ip(1), IsValid: true}}}
	svc := NewCouponService(repo)
	svc.now = func() time.Time { return testNow }
	ctx := context.Background()

	got, err := svc.GetByName(ctx, "SUMMER")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	_, err = svc.GetByName(ctx, "WINTER")
	assert.ErrorIs(t, err, ErrNotFound)

	c, err := svc.Validate(ctx, "SUMMER", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)
	assert.Equal(t, testNow, repo.gotNow)

	_, err = svc.Validate(ctx, "SUMMER", 2, nil)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Validate(ctx, "", 1, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
