package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateQuoteRequest alta de cotización. ClientName es obligatorio;
// CustomerID es un vínculo opcional.
type CreateQuoteRequest struct {
	ClientName string `json:"client_name"`
	CustomerID string `json:"customer_id"`
}

// AddQuoteItemRequest agrega un ítem del catálogo a la cotización.
// Quantity por defecto 1 cuando viene en cero.
type AddQuoteItemRequest struct {
	PartCode string `json:"part_code"`
	Quantity int    `json:"quantity"`
}

// RecalculateRequest overrides opcionales de margen e impuesto.
// Un campo nil reutiliza el valor almacenado en la cotización.
type RecalculateRequest struct {
	Margin  *decimal.Decimal `json:"margin"`
	TaxRate *decimal.Decimal `json:"tax_rate"`
}

// QuoteItemResponse línea de cotización.
type QuoteItemResponse struct {
	ID        string          `json:"id"`
	PartCode  string          `json:"part_code"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// QuoteResponse cabecera de cotización con totales derivados.
type QuoteResponse struct {
	ID         string              `json:"id"`
	ClientName string              `json:"client_name"`
	CustomerID string              `json:"customer_id,omitempty"`
	Status     string              `json:"status"`
	Margin     decimal.Decimal     `json:"margin"`
	TaxRate    decimal.Decimal     `json:"tax_rate"`
	TotalCost  decimal.Decimal     `json:"total_cost"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Items      []QuoteItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// QuoteListResponse listado paginado de cotizaciones (sin ítems).
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
