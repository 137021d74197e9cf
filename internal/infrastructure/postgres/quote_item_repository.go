package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.QuoteItemRepository = (*QuoteItemRepo)(nil)

// QuoteItemRepo implementación del puerto QuoteItemRepository sobre PostgreSQL (usable con pool o tx).
type QuoteItemRepo struct {
	q Querier
}

// NewQuoteItemRepo construye el adaptador de persistencia para líneas de cotización.
func NewQuoteItemRepo(q Querier) *QuoteItemRepo {
	return &QuoteItemRepo{q: q}
}

// Create persiste una nueva línea.
func (r *QuoteItemRepo) Create(item *entity.QuoteItem) error {
	query := `
		INSERT INTO quote_items (id, quote_id, part_code, name, quantity, unit_cost, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuoteID, item.PartCode, item.Name, item.Quantity, item.UnitCost, item.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// ListByQuote lista las líneas de una cotización ordenadas por part_code.
func (r *QuoteItemRepo) ListByQuote(quoteID string) ([]*entity.QuoteItem, error) {
	query := `
		SELECT id, quote_id, part_code, name, quantity, unit_cost, unit_price
		FROM quote_items WHERE quote_id = $1 ORDER BY part_code`
	rows, err := r.q.Query(context.Background(), query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()

	var items []*entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.PartCode, &it.Name, &it.Quantity, &it.UnitCost, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// UpdateUnitPrice actualiza el precio unitario derivado de una línea.
func (r *QuoteItemRepo) UpdateUnitPrice(itemID string, unitPrice decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quote_items SET unit_price = $2 WHERE id = $1`,
		itemID, unitPrice,
	)
	if err != nil {
		return fmt.Errorf("update quote item price: %w", err)
	}
	return nil
}

// Delete elimina una línea verificando que pertenezca a la cotización indicada.
func (r *QuoteItemRepo) Delete(itemID, quoteID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM quote_items WHERE id = $1 AND quote_id = $2`,
		itemID, quoteID,
	)
	if err != nil {
		return fmt.Errorf("delete quote item: %w", err)
	}
	return nil
}

// DeleteByQuote elimina todas las líneas de una cotización (borrado de la cotización).
func (r *QuoteItemRepo) DeleteByQuote(quoteID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM quote_items WHERE quote_id = $1`,
		quoteID,
	)
	if err != nil {
		return fmt.Errorf("delete quote items: %w", err)
	}
	return nil
}
