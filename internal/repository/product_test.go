package repository

import (
	"context"
	"regexp"
	"testing"

	"gamestore/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id_product", "title", "description", "date_register", "date_last_modified", "image",
	"calification", "puntos_venta", "puede_rentarse", "destacado", "type_id_id", "tipo_juego_id", "consoles", "console_names"}

func intPtr(v int) *int { return &v }

func TestProductRepository_ListFilters(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.title ILIKE $1 AND p.tipo_juego_id = $2 AND EXISTS")).
		WithArgs("%halo%", 3, 2).
		WillReturnRows(pgxmock.NewRows(productCols).
			AddRow(1, "Halo", "", nil, nil, "halo.png", 9, 100, true, true, nil, intPtr(3), []int64{2, 5}, []string{"Xbox", "PC"}))

	got, err := repo.List(context.Background(), models.ProductFilter{Search: " halo ", GameTypeID: intPtr(3), ConsoleID: intPtr(2)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Halo", got[0].Title)
	assert.Equal(t, []models.Console{{ID: 2, Name: "Xbox"}, {ID: 5, Name: "PC"}}, got[0].Consoles)
	assert.Equal(t, 3, *got[0].GameTypeID)
}

func TestProductRepository_ListAfter(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id_product > $1")).
		WithArgs(10, 5).
		WillReturnRows(pgxmock.NewRows(productCols))

	got, err := repo.ListAfter(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.id_product = $1")).
		WithArgs(404).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProductRepository_RelatedWithoutGameType(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	got, err := repo.Related(context.Background(), &models.Product{ID: 1}, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductRepository_Variants(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)
	xbox := "Xbox"

	mock.ExpectQuery(regexp.QuoteMeta("WHERE g.producto_id = $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "producto", "consola", "cname", "licencia", "lname", "precio", "descuento", "dias", "stock"}).
			AddRow(4, 1, intPtr(2), &xbox, nil, nil, 59, 79, nil, 3).
			AddRow(5, 1, nil, nil, nil, nil, 69, 0, intPtr(7), 0))

	got, err := repo.Variants(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Xbox", *got[0].ConsoleName)
	assert.Nil(t, got[1].ConsoleID)
	assert.Equal(t, 69, got[1].Price)
	assert.Equal(t, 79, got[0].OriginalPrice)
	assert.Equal(t, 7, *got[1].RentalDays)
}
