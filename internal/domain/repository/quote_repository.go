package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// QuoteRepository define el puerto de persistencia para la cabecera de cotizaciones.
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	List(limit, offset int) ([]*entity.Quote, error)
	// UpdatePricing persiste margin, tax_rate, total_cost y total_price.
	// Dentro de una transacción del TxRunner forma, junto con los ítems,
	// la unidad atómica de la recalculación.
	UpdatePricing(quote *entity.Quote) error
	Delete(id string) error
}

// QuoteItemRepository define el puerto de persistencia para las líneas de cotización.
type QuoteItemRepository interface {
	Create(item *entity.QuoteItem) error
	// ListByQuote ordena por part_code (orden de presentación del BOQ).
	ListByQuote(quoteID string) ([]*entity.QuoteItem, error)
	UpdateUnitPrice(itemID string, unitPrice decimal.Decimal) error
	Delete(itemID, quoteID string) error
	DeleteByQuote(quoteID string) error
}
