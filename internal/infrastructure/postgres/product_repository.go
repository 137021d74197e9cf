package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto del catálogo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, part_code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.PartCode, product.Name, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, part_code, name, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.PartCode, &p.Name, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetByPartCode obtiene un producto por su código de parte (clave estable del catálogo).
func (r *ProductRepo) GetByPartCode(partCode string) (*entity.Product, error) {
	query := `
		SELECT id, part_code, name, created_at, updated_at
		FROM products WHERE part_code = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, partCode).Scan(
		&p.ID, &p.PartCode, &p.Name, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by part code: %w", err)
	}
	return &p, nil
}

// Update actualiza el nombre del producto. PartCode es inmutable.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con paginación, ordenados por part_code.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT id, part_code, name, created_at, updated_at
		FROM products ORDER BY part_code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.PartCode, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// Search busca productos por código de parte o nombre (contains, case-insensitive),
// uniendo cada uno con su entrada de precio más reciente si existe.
func (r *ProductRepo) Search(term string, limit int) ([]*entity.ProductWithPrice, error) {
	query := `
		SELECT p.id, p.part_code, p.name, p.created_at, p.updated_at,
		       pe.id, pe.product_id, pe.price, pe.currency, pe.vendor, pe.effective_date
		FROM products p
		LEFT JOIN LATERAL (
			SELECT id, product_id, price, currency, vendor, effective_date
			FROM price_entries
			WHERE product_id = p.id
			ORDER BY effective_date DESC, id DESC
			LIMIT 1
		) pe ON true
		WHERE p.part_code ILIKE '%' || $1 || '%' OR p.name ILIKE '%' || $1 || '%'
		ORDER BY p.part_code
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, term, limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var results []*entity.ProductWithPrice
	for rows.Next() {
		var pw entity.ProductWithPrice
		var (
			peID, peProductID, peCurrency, peVendor *string
			pePrice                                 *decimal.Decimal
			peEffective                             *time.Time
		)
		err := rows.Scan(
			&pw.Product.ID, &pw.Product.PartCode, &pw.Product.Name, &pw.Product.CreatedAt, &pw.Product.UpdatedAt,
			&peID, &peProductID, &pePrice, &peCurrency, &peVendor, &peEffective,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product with price: %w", err)
		}
		if peID != nil {
			pw.Latest = &entity.PriceEntry{
				ID:            *peID,
				ProductID:     *peProductID,
				Price:         *pePrice,
				Currency:      *peCurrency,
				Vendor:        *peVendor,
				EffectiveDate: *peEffective,
			}
		}
		results = append(results, &pw)
	}
	return results, rows.Err()
}
