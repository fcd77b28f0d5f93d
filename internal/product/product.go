package product

// Product represents a catalog entry and maps to the `products` table.
// The catalog is read-only from this service's perspective; rows are created
// and updated by an external catalog management process.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      bool    `json:"active"`
}
