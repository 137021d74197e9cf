package entity

import "time"

// Product representa un artículo del catálogo de precios.
// PartCode es la clave estable del catálogo; el nombre puede refrescarse en importaciones posteriores.
type Product struct {
	ID        string
	PartCode  string // código de parte único
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductWithPrice combina un producto con su entrada de precio más reciente
// (nil cuando el producto aún no tiene historial).
type ProductWithPrice struct {
	Product Product
	Latest  *PriceEntry
}
