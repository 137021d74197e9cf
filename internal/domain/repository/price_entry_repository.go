package repository

import "github.com/jhoicas/cotizador-api/internal/domain/entity"

// PriceEntryRepository define el puerto de persistencia para el historial de precios.
// Solo inserta y lee: el historial es append-only por invariante de dominio.
type PriceEntryRepository interface {
	Create(entry *entity.PriceEntry) error
	// LatestByProduct devuelve la entrada con EffectiveDate más reciente, o nil si no hay.
	LatestByProduct(productID string) (*entity.PriceEntry, error)
	ListByProduct(productID string) ([]*entity.PriceEntry, error)
}
