package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación del puerto QuoteRepository sobre PostgreSQL (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepo construye el adaptador de persistencia para cabeceras de cotización.
func NewQuoteRepo(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

// customer_id vacío en la entidad se persiste como NULL (vínculo opcional).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste una nueva cotización.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, client_name, customer_id, status, margin, tax_rate, total_cost, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.ClientName, nullIfEmpty(quote.CustomerID), quote.Status,
		quote.Margin, quote.TaxRate, quote.TotalCost, quote.TotalPrice,
		quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtiene una cotización por ID.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `
		SELECT id, client_name, customer_id, status, margin, tax_rate, total_cost, total_price, created_at, updated_at
		FROM quotes WHERE id = $1`
	q, err := scanQuote(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

// List lista cotizaciones de la más reciente a la más antigua, con paginación.
func (r *QuoteRepo) List(limit, offset int) ([]*entity.Quote, error) {
	query := `
		SELECT id, client_name, customer_id, status, margin, tax_rate, total_cost, total_price, created_at, updated_at
		FROM quotes ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*entity.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// UpdatePricing persiste el resultado del motor de precios: margin, tax_rate y totales.
func (r *QuoteRepo) UpdatePricing(quote *entity.Quote) error {
	query := `
		UPDATE quotes SET margin = $2, tax_rate = $3, total_cost = $4, total_price = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.Margin, quote.TaxRate, quote.TotalCost, quote.TotalPrice, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quote pricing: %w", err)
	}
	return nil
}

// Delete elimina la cabecera. Los ítems se borran antes dentro de la misma transacción.
func (r *QuoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	var customerID *string
	err := row.Scan(
		&q.ID, &q.ClientName, &customerID, &q.Status,
		&q.Margin, &q.TaxRate, &q.TotalCost, &q.TotalPrice,
		&q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if customerID != nil {
		q.CustomerID = *customerID
	}
	return &q, nil
}
