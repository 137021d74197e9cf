package quoting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(cost string, qty int) *entity.QuoteItem {
	return &entity.QuoteItem{UnitCost: dec(cost), Quantity: qty}
}

// Margen 20% sobre precio: unitPrice = cost / 0.8, no cost × 1.2.
func TestComputeTotals_MargenSobrePrecio(t *testing.T) {
	items := []*entity.QuoteItem{item("80", 1)}

	result := ComputeTotals(items, dec("20"), decimal.Zero)

	require.Len(t, result.UnitPrices, 1)
	assert.True(t, result.UnitPrices[0].Equal(dec("100")),
		"80 / (1 - 0.20) debe dar 100, no 96: got %s", result.UnitPrices[0])
	assert.True(t, result.TotalCost.Equal(dec("80")))
	assert.True(t, result.TotalPrice.Equal(dec("100")))
}

// El impuesto se aplica una sola vez sobre la suma, no línea por línea.
func TestComputeTotals_ImpuestoSobreLaSuma(t *testing.T) {
	items := []*entity.QuoteItem{
		item("50", 2),  // costo 100
		item("25", 4),  // costo 100
	}

	result := ComputeTotals(items, decimal.Zero, dec("19"))

	assert.True(t, result.TotalCost.Equal(dec("200")))
	// Sin margen el precio de venta es el costo; 200 × 1.19 = 238
	assert.True(t, result.TotalPrice.Equal(dec("238")), "got %s", result.TotalPrice)
}

// Margen y impuesto combinados con cantidades.
func TestComputeTotals_MargenEImpuesto(t *testing.T) {
	items := []*entity.QuoteItem{item("90", 2)}

	result := ComputeTotals(items, dec("10"), dec("10"))

	// unitPrice = 90 / 0.9 = 100; sum = 200; total = 200 × 1.1 = 220
	assert.True(t, result.UnitPrices[0].Equal(dec("100")))
	assert.True(t, result.TotalCost.Equal(dec("180")))
	assert.True(t, result.TotalPrice.Equal(dec("220")), "got %s", result.TotalPrice)
}

// Margen 100 o mayor: el factor deja de ser positivo y el precio cae al costo
// en silencio, nunca divide por cero ni devuelve error.
func TestComputeTotals_MargenCienPorCientoCaeAlCosto(t *testing.T) {
	items := []*entity.QuoteItem{item("75", 1)}

	for _, margin := range []string{"100", "150"} {
		result := ComputeTotals(items, dec(margin), decimal.Zero)
		assert.True(t, result.UnitPrices[0].Equal(dec("75")),
			"con margen %s%% el precio debe ser el costo", margin)
		assert.True(t, result.TotalPrice.Equal(dec("75")))
	}
}

// Cotización sin líneas: todos los agregados en cero.
func TestComputeTotals_SinLineas(t *testing.T) {
	result := ComputeTotals(nil, dec("20"), dec("19"))

	assert.Empty(t, result.UnitPrices)
	assert.True(t, result.TotalCost.IsZero())
	assert.True(t, result.TotalPrice.IsZero())
}

// Costo cero (producto sin historial de precios): línea válida con precio cero.
func TestComputeTotals_CostoCero(t *testing.T) {
	items := []*entity.QuoteItem{item("0", 3)}

	result := ComputeTotals(items, dec("20"), dec("19"))

	assert.True(t, result.UnitPrices[0].IsZero())
	assert.True(t, result.TotalPrice.IsZero())
}
