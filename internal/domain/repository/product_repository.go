package repository

import "github.com/jhoicas/cotizador-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByPartCode(partCode string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	// Search busca por part code O nombre (contains) y une cada producto con su
	// entrada de precio más reciente.
	Search(term string, limit int) ([]*entity.ProductWithPrice, error)
}
