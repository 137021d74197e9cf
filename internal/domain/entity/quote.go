package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización. Etiqueta de ciclo de vida sin reglas de transición.
const (
	QuoteStatusDraft    = "DRAFT"
	QuoteStatusSent     = "SENT"
	QuoteStatusApproved = "APPROVED"
	QuoteStatusRejected = "REJECTED"
)

// Quote es la cabecera de una cotización (Bill of Quantities).
// TotalCost y TotalPrice son campos derivados: el motor de precios debe dejarlos
// siempre consistentes con los ítems y con Margin/TaxRate vigentes.
type Quote struct {
	ID         string
	ClientName string // obligatorio; copiado del cliente al crear, editable después
	CustomerID string // vínculo opcional; vacío cuando el cliente fue eliminado
	Status     string
	Margin     decimal.Decimal // porcentaje, modelo margen-sobre-precio
	TaxRate    decimal.Decimal // porcentaje, aplicado una sola vez al total
	TotalCost  decimal.Decimal
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
