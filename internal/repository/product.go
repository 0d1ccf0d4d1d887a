package repository

import (
	"context"
	"fmt"
	"strings"

	"gamestore/internal/logger"
	"gamestore/internal/models"

	"go.uber.org/zap"
)

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productSelect = `
	SELECT p.id_product, p.title, p.description, p.date_register, p.date_last_modified, p.image,
		p.calification, p.puntos_venta, p.puede_rentarse, p.destacado, p.type_id_id, p.tipo_juego_id,
		COALESCE(array_agg(c.id_console ORDER BY c.id_console) FILTER (WHERE c.id_console IS NOT NULL), '{}')::bigint[],
		COALESCE(array_agg(c.name ORDER BY c.id_console) FILTER (WHERE c.id_console IS NOT NULL), '{}')::text[]
	FROM products_products p
	LEFT JOIN products_products_consoles pc ON pc.products_id = p.id_product
	LEFT JOIN products_consoles c ON c.id_console = pc.consoles_id`

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p          models.Product
		consoleIDs []int64
		names      []string
	)
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.DateRegister,
		&p.DateLastModified,
		&p.Image,
		&p.Calification,
		&p.PuntosVenta,
		&p.PuedeRentarse,
		&p.Destacado,
		&p.TypeID,
		&p.GameTypeID,
		&consoleIDs,
		&names,
	)
	if err != nil {
		return nil, err
	}
	p.Consoles = make([]models.Console, 0, len(consoleIDs))
	for i, id := range consoleIDs {
		c := models.Console{ID: int(id)}
		if i < len(names) {
			c.Name = names[i]
		}
		p.Consoles = append(p.Consoles, c)
	}
	return &p, nil
}

// productQuery собирает WHERE по условиям вида "p.title ILIKE $%d".
type productQuery struct {
	where []string
	args  []any
}

func (q *productQuery) add(cond string, arg any) {
	q.args = append(q.args, arg)
	q.where = append(q.where, fmt.Sprintf(cond, len(q.args)))
}

func (q *productQuery) applyFilter(f models.ProductFilter) {
	if s := strings.TrimSpace(f.Search); s != "" {
		q.add("p.title ILIKE $%d", "%"+s+"%")
	}
	if f.TypeID != nil {
		q.add("p.type_id_id = $%d", *f.TypeID)
	}
	if f.GameTypeID != nil {
		q.add("p.tipo_juego_id = $%d", *f.GameTypeID)
	}
	if f.ConsoleID != nil {
		q.add("EXISTS (SELECT 1 FROM products_products_consoles x WHERE x.products_id = p.id_product AND x.consoles_id = $%d)", *f.ConsoleID)
	}
}

func (q *productQuery) sql(order string, limit int) string {
	var b strings.Builder
	b.WriteString(productSelect)
	if len(q.where) > 0 {
		b.WriteString("\n\tWHERE ")
		b.WriteString(strings.Join(q.where, " AND "))
	}
	b.WriteString("\n\tGROUP BY p.id_product\n\tORDER BY ")
	b.WriteString(order)
	if limit > 0 {
		q.args = append(q.args, limit)
		fmt.Fprintf(&b, "\n\tLIMIT $%d", len(q.args))
	}
	return b.String()
}

func (r *ProductRepository) query(ctx context.Context, sql string, args ...any) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Log.Error("Ошибка выборки продуктов (repo)", zap.Error(err))
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			logger.Log.Error("Ошибка сканирования продукта (repo)", zap.Error(err))
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) List(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	logger.Log.Debug("Список продуктов (repo)", zap.String("search", f.Search))
	q := &productQuery{}
	q.applyFilter(f)
	return r.query(ctx, q.sql("p.id_product", 0), q.args...)
}

// ListAfter - keyset-пагинация по id_product.
func (r *ProductRepository) ListAfter(ctx context.Context, afterID, limit int) ([]models.Product, error) {
	q := &productQuery{}
	if afterID > 0 {
		q.add("p.id_product > $%d", afterID)
	}
	return r.query(ctx, q.sql("p.id_product", limit), q.args...)
}

func (r *ProductRepository) Favorites(ctx context.Context, limit int) ([]models.Product, error) {
	q := &productQuery{where: []string{"p.destacado"}}
	return r.query(ctx, q.sql("p.calification DESC, p.id_product", limit), q.args...)
}

func (r *ProductRepository) Search(ctx context.Context, text string, limit int) ([]models.Product, error) {
	q := &productQuery{}
	q.applyFilter(models.ProductFilter{Search: text})
	return r.query(ctx, q.sql("p.id_product", limit), q.args...)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	q := &productQuery{}
	q.add("p.id_product = $%d", id)
	p, err := scanProduct(r.db.QueryRow(ctx, q.sql("p.id_product", 0), q.args...))
	if err != nil {
		return nil, notFound(err, "get product")
	}
	return p, nil
}

func (r *ProductRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products_products WHERE id_product = $1)`, id).Scan(&exists)
	return exists, err
}

// Related - продукты того же tipo_juego, кроме самого продукта.
func (r *ProductRepository) Related(ctx context.Context, p *models.Product, limit int) ([]models.Product, error) {
	if p.GameTypeID == nil {
		return []models.Product{}, nil
	}
	q := &productQuery{}
	q.add("p.tipo_juego_id = $%d", *p.GameTypeID)
	q.add("p.id_product <> $%d", p.ID)
	return r.query(ctx, q.sql("p.calification DESC, p.id_product", limit), q.args...)
}

const gameDetailSelect = `
	SELECT g.id_game_detail, g.producto_id, g.consola_id, c.name, g.licencia_id, l.name,
		g.precio, g.precio_descuento, g.duracion_dias_alquiler, g.stock
	FROM products_gamedetail g
	LEFT JOIN products_consoles c ON c.id_console = g.consola_id
	LEFT JOIN products_licenses l ON l.id_license = g.licencia_id`

func scanGameDetail(row rowScanner) (*models.GameDetail, error) {
	var g models.GameDetail
	err := row.Scan(&g.ID, &g.ProductID, &g.ConsoleID, &g.ConsoleName, &g.LicenseID, &g.LicenseName,
		&g.Price, &g.OriginalPrice, &g.RentalDays, &g.Stock)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Variants - все комбинации консоль/лицензия/срок продукта, внутри
// комбинации от дешёвых к дорогим.
func (r *ProductRepository) Variants(ctx context.Context, productID int) ([]models.GameDetail, error) {
	rows, err := r.db.Query(ctx, gameDetailSelect+`
	WHERE g.producto_id = $1
	ORDER BY g.consola_id, g.licencia_id, g.duracion_dias_alquiler, g.precio, g.id_game_detail`, productID)
	if err != nil {
		return nil, fmt.Errorf("query variants: %w", err)
	}
	defer rows.Close()

	variants := make([]models.GameDetail, 0)
	for rows.Next() {
		g, err := scanGameDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, *g)
	}
	return variants, rows.Err()
}

func (r *ProductRepository) GetGameDetail(ctx context.Context, id int) (*models.GameDetail, error) {
	g, err := scanGameDetail(r.db.QueryRow(ctx, gameDetailSelect+`
	WHERE g.id_game_detail = $1`, id))
	if err != nil {
		return nil, notFound(err, "get game detail")
	}
	return g, nil
}
