// Package cart implements the in-memory shopping cart for one browsing
// session: an ordered collection of line items with a derived total and
// a UI visibility flag. Every operation is total; unknown product IDs
// degrade to no-ops and nothing here returns an error.
package cart

import (
	"github.com/glowcosmetics/storefront/internal/models"
)

// LineItem is one cart entry: a product reference with the display
// fields captured at add time and the requested quantity.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the line items of a single session in insertion order.
// It is not safe for concurrent use; Store serializes access for the
// HTTP layer.
type Cart struct {
	items []LineItem
	open  bool
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart. If a line item for the
// product already exists its quantity is incremented, otherwise a new
// line is appended with quantity 1. No stock limit is enforced here;
// stock is re-checked at checkout. Adding also opens the cart.
func (c *Cart) Add(p models.Product) {
	c.open = true
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  1,
	})
}

// Remove deletes the line item for productID. Absent IDs are a no-op.
func (c *Cart) Remove(productID int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the line item for productID.
// A quantity of zero or less removes the line; a line is never stored
// with quantity 0.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Total recomputes the cart total from the current line items on every
// call; it is never cached, so it cannot go stale.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Len returns the number of line items (not units).
func (c *Cart) Len() int {
	return len(c.items)
}

// SetOpen toggles the cart sidebar visibility flag. Pure UI state.
func (c *Cart) SetOpen(open bool) {
	c.open = open
}

func (c *Cart) Open() bool {
	return c.open
}
