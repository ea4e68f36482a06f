package entity

import "time"

// Supplier representa un proveedor del restaurante.
// Los artículos y pedidos lo referencian por Name, no por ID.
type Supplier struct {
	ID        string // código de despliegue SUP-xxx
	Name      string
	Contact   string
	Email     string
	Phone     string
	Category  string // Produce, Spirits, Meat & Poultry, ...
	Rating    float64
	LastOrder string // fecha YYYY-MM-DD del último pedido recibido
	CreatedAt time.Time
	UpdatedAt time.Time
}
