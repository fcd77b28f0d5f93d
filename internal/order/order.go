package order

import "github.com/sakher/perfumes-backend/internal/cart"

// Order is a durable record created from a cart snapshot plus customer
// contact information. The cart is stored exactly as submitted and never
// mutated afterwards; ID and CreatedAt are assigned by the repository.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Cart          []cart.Item `json:"cart"`
	CreatedAt     string      `json:"created_at"`
}
