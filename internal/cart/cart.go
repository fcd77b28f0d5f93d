package cart

import "math"

// Item is a line in the cart. Name, price and image are snapshots taken at
// add-to-cart time; later catalog changes do not touch items already added.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL *string `json:"image_url,omitempty"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered collection of items, unique by item ID, plus a
// visibility flag for the storefront drawer. The zero value is a usable
// empty, closed cart.
type Cart struct {
	Items []Item `json:"items"`
	Open  bool   `json:"open"`
}

// AddItem appends the item, or increments the quantity of an existing item
// with the same ID. It never fails.
func (c *Cart) AddItem(item Item) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the item with the given ID. Removing an absent ID is a
// no-op, not an error.
func (c *Cart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the item with the given ID. A quantity
// of zero or less removes the item. No-op if the ID is absent.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
}

// Toggle flips the drawer visibility flag.
func (c *Cart) Toggle() {
	c.Open = !c.Open
}

func (c *Cart) OpenDrawer() {
	c.Open = true
}

// CloseDrawer is also used when navigating to checkout.
func (c *Cart) CloseDrawer() {
	c.Open = false
}

// ItemCount returns the sum of quantities over all items.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// TotalAmount returns the full-precision sum of price*quantity.
func (c *Cart) TotalAmount() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// DisplayTotal rounds TotalAmount to 2 decimal places. Rounding happens only
// here; internal computations keep full precision.
func (c *Cart) DisplayTotal() float64 {
	return math.Round(c.TotalAmount()*100) / 100
}
