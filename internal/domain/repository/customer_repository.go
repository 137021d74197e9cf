package repository

import "github.com/jhoicas/cotizador-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// List ordena por nombre ascendente.
	List(limit, offset int) ([]*entity.Customer, error)
	// Delete elimina el cliente. Las cotizaciones vinculadas conservan su
	// client_name y quedan con customer_id en NULL (nunca se borran en cascada).
	Delete(id string) error
}
