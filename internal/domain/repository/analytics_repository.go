package repository

import "context"

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int64, error)
	CountQuotes(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
}
