package dto

// SupplierResponse registro de proveedor en el wire.
type SupplierResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Contact   string  `json:"contact"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Category  string  `json:"category"`
	Rating    float64 `json:"rating"`
	LastOrder string  `json:"lastOrder"`
}

// CreateSupplierRequest alta de proveedor.
type CreateSupplierRequest struct {
	Name     string  `json:"name"`
	Contact  string  `json:"contact"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
}

// UpdateSupplierRequest actualización parcial de proveedor.
type UpdateSupplierRequest struct {
	Name     *string  `json:"name"`
	Contact  *string  `json:"contact"`
	Email    *string  `json:"email"`
	Phone    *string  `json:"phone"`
	Category *string  `json:"category"`
	Rating   *float64 `json:"rating"`
}
