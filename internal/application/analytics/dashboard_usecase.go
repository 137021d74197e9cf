// Package analytics contiene los casos de uso read-only del panel principal.
package analytics

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// DashboardUseCase genera los contadores del dashboard.
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
// Tres consultas en paralelo: productos, cotizaciones y clientes.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int64
		err error
	}

	productsCh := make(chan countResult, 1)
	quotesCh := make(chan countResult, 1)
	customersCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountQuotes(ctx)
		quotesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountCustomers(ctx)
		customersCh <- countResult{n, err}
	}()

	products := <-productsCh
	quotes := <-quotesCh
	customers := <-customersCh

	for _, r := range []countResult{products, quotes, customers} {
		if r.err != nil {
			return nil, r.err
		}
	}

	return &dto.DashboardSummaryDTO{
		Products:  products.n,
		Quotes:    quotes.n,
		Customers: customers.n,
	}, nil
}
