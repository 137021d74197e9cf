package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.PriceEntryRepository = (*PriceEntryRepo)(nil)

// PriceEntryRepo implementación del puerto PriceEntryRepository sobre PostgreSQL.
// Solo inserta y lee: el historial de precios nunca se actualiza ni borra.
type PriceEntryRepo struct {
	q Querier
}

func NewPriceEntryRepository(q Querier) *PriceEntryRepo {
	return &PriceEntryRepo{q: q}
}

// Create agrega una entrada al historial de precios del producto.
func (r *PriceEntryRepo) Create(entry *entity.PriceEntry) error {
	query := `
		INSERT INTO price_entries (id, product_id, price, currency, vendor, effective_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProductID, entry.Price, entry.Currency, entry.Vendor, entry.EffectiveDate,
	)
	if err != nil {
		return fmt.Errorf("insert price entry: %w", err)
	}
	return nil
}

// LatestByProduct devuelve la entrada de precio vigente (EffectiveDate más reciente), o nil.
func (r *PriceEntryRepo) LatestByProduct(productID string) (*entity.PriceEntry, error) {
	query := `
		SELECT id, product_id, price, currency, vendor, effective_date
		FROM price_entries
		WHERE product_id = $1
		ORDER BY effective_date DESC, id DESC
		LIMIT 1`
	var pe entity.PriceEntry
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&pe.ID, &pe.ProductID, &pe.Price, &pe.Currency, &pe.Vendor, &pe.EffectiveDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest price entry: %w", err)
	}
	return &pe, nil
}

// ListByProduct lista el historial completo de un producto, del más reciente al más antiguo.
func (r *PriceEntryRepo) ListByProduct(productID string) ([]*entity.PriceEntry, error) {
	query := `
		SELECT id, product_id, price, currency, vendor, effective_date
		FROM price_entries
		WHERE product_id = $1
		ORDER BY effective_date DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list price entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.PriceEntry
	for rows.Next() {
		var pe entity.PriceEntry
		if err := rows.Scan(&pe.ID, &pe.ProductID, &pe.Price, &pe.Currency, &pe.Vendor, &pe.EffectiveDate); err != nil {
			return nil, fmt.Errorf("scan price entry: %w", err)
		}
		entries = append(entries, &pe)
	}
	return entries, rows.Err()
}
