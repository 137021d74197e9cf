package entity

import "github.com/shopspring/decimal"

// QuoteItem es una línea de la cotización.
// UnitCost se captura al agregar la línea y queda congelado (no sigue cambios
// posteriores del catálogo). UnitPrice se recalcula con cada cambio de margen/impuesto.
type QuoteItem struct {
	ID        string
	QuoteID   string
	PartCode  string
	Name      string
	Quantity  int
	UnitCost  decimal.Decimal
	UnitPrice decimal.Decimal
}
