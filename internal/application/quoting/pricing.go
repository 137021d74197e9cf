package quoting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)

	// initialMarkup precio provisional de una línea recién agregada (costo × 1.1).
	// Solo vive hasta la recalculación que corre en la misma transacción.
	initialMarkup = decimal.RequireFromString("1.1")
)

// PricingResult salida del cálculo puro de precios sobre las líneas de una cotización.
// UnitPrices es paralelo al slice de ítems de entrada.
type PricingResult struct {
	UnitPrices []decimal.Decimal
	TotalCost  decimal.Decimal
	TotalPrice decimal.Decimal
}

// ComputeTotals aplica el modelo margen-sobre-precio (no markup-sobre-costo):
//
//	marginFactor = 1 - margin/100
//	unitPrice    = unitCost / marginFactor   (si marginFactor > 0)
//
// Con margin >= 100 el factor deja de ser positivo y la línea cae a
// unitPrice = unitCost: el margen se desactiva en silencio, no es un error.
//
// El impuesto se aplica una sola vez sobre la suma pre-impuesto, no por línea:
//
//	totalCost  = Σ unitCost × qty
//	totalPrice = (Σ unitPrice × qty) × (1 + taxRate/100)
func ComputeTotals(items []*entity.QuoteItem, margin, taxRate decimal.Decimal) PricingResult {
	marginFactor := one.Sub(margin.Div(hundred))

	totalCost := decimal.Zero
	sellSum := decimal.Zero
	prices := make([]decimal.Decimal, len(items))

	for i, item := range items {
		unitPrice := item.UnitCost
		if marginFactor.IsPositive() {
			unitPrice = item.UnitCost.Div(marginFactor)
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		totalCost = totalCost.Add(item.UnitCost.Mul(qty))
		sellSum = sellSum.Add(unitPrice.Mul(qty))
		prices[i] = unitPrice
	}

	return PricingResult{
		UnitPrices: prices,
		TotalCost:  totalCost,
		TotalPrice: sellSum.Mul(one.Add(taxRate.Div(hundred))),
	}
}
