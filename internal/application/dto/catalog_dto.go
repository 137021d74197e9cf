package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImportResult resumen de una importación de lista de precios.
// La importación es de éxito parcial: las filas inválidas se cuentan y se saltan,
// nunca abortan el lote.
type ImportResult struct {
	Imported int `json:"imported"`
	Errors   int `json:"errors"`
}

// ProductResponse producto del catálogo con su precio vigente (si existe).
type ProductResponse struct {
	ID        string           `json:"id"`
	PartCode  string           `json:"part_code"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price,omitempty"`    // precio vigente; nil = sin historial
	Currency  string           `json:"currency,omitempty"`
	Vendor    string           `json:"vendor,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PriceEntryResponse una entrada del historial de precios.
type PriceEntryResponse struct {
	ID            string          `json:"id"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Vendor        string          `json:"vendor"`
	EffectiveDate time.Time       `json:"effective_date"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
