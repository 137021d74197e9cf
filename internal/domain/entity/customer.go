package entity

import "time"

// Customer representa un cliente. Solo Name es obligatorio.
// Borrar un cliente no borra sus cotizaciones: la cotización conserva el
// nombre desnormalizado y el vínculo queda en NULL.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
