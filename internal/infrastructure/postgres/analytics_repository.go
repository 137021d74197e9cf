package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountProducts devuelve el total de productos del catálogo.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

// CountQuotes devuelve el total de cotizaciones.
func (r *AnalyticsRepo) CountQuotes(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM quotes`)
}

// CountCustomers devuelve el total de clientes.
func (r *AnalyticsRepo) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM customers`)
}

func (r *AnalyticsRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics count: %w", err)
	}
	return n, nil
}
