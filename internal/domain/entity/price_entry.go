package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceEntry es una entrada del historial de precios de un producto.
// El historial es append-only: nunca se sobreescribe una entrada anterior;
// el "precio vigente" es la entrada con EffectiveDate más reciente.
type PriceEntry struct {
	ID            string
	ProductID     string
	Price         decimal.Decimal // costo unitario
	Currency      string          // código ISO 4217, ej. "USD"
	Vendor        string          // OEM o proveedor origen de la lista
	EffectiveDate time.Time       // asignada al importar
}
