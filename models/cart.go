package models

import "time"

// LineKind discriminates the two cart line variants.
type LineKind string

const (
	LineKindService LineKind = "service"
	LineKindProduct LineKind = "product"
)

// CartLine is a single cart entry. Service lines always carry quantity 1;
// product lines carry a positive quantity. A given ID appears at most once
// across all lines, and insertion order is preserved.
type CartLine struct {
	ID              string   `json:"id"`
	Kind            LineKind `json:"kind"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	Quantity        int      `json:"quantity"`
	DurationMinutes int      `json:"durationMinutes,omitempty"`
}

// Cart holds the shopper's selected services and products.
type Cart struct {
	ShopperID string     `json:"shopperId"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// AddService inserts a service line if no line with that id exists.
// Re-adding an already-present service is a no-op.
func (c *Cart) AddService(svc Service) {
	if c.findLine(svc.ID) != nil {
		return
	}
	c.Lines = append(c.Lines, CartLine{
		ID:              svc.ID,
		Kind:            LineKindService,
		Name:            svc.Name,
		Price:           svc.Price,
		Quantity:        1,
		DurationMinutes: svc.DurationMinutes,
	})
}

// AddProduct inserts a product line with quantity 1, or increments the
// quantity of the existing line for that product id.
func (c *Cart) AddProduct(p Product) {
	if line := c.findLine(p.ID); line != nil {
		if line.Kind == LineKindProduct {
			line.Quantity++
		}
		return
	}
	c.Lines = append(c.Lines, CartLine{
		ID:       p.ID,
		Kind:     LineKindProduct,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: 1,
	})
}

// SetProductQuantity sets the quantity of the product line with the given id.
// A quantity of zero or less removes the line. Calls against a service line
// are ignored.
func (c *Cart) SetProductQuantity(id string, qty int) {
	line := c.findLine(id)
	if line == nil || line.Kind != LineKindProduct {
		return
	}
	if qty <= 0 {
		c.RemoveLine(id)
		return
	}
	line.Quantity = qty
}

// RemoveLine removes the line with the given id regardless of kind.
func (c *Cart) RemoveLine(id string) {
	for i, line := range c.Lines {
		if line.ID == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// HasService reports whether a service line with the given id is present.
func (c *Cart) HasService(id string) bool {
	line := c.findLine(id)
	return line != nil && line.Kind == LineKindService
}

// ProductQuantity returns the quantity of the product line with the given id,
// or 0 if absent.
func (c *Cart) ProductQuantity(id string) int {
	line := c.findLine(id)
	if line == nil || line.Kind != LineKindProduct {
		return 0
	}
	return line.Quantity
}

// HasServiceLines reports whether the cart contains at least one service line.
func (c *Cart) HasServiceLines() bool {
	for _, line := range c.Lines {
		if line.Kind == LineKindService {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total returns the cart total: service price per service line, price times
// quantity per product line.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		switch line.Kind {
		case LineKindService:
			total += line.Price
		case LineKindProduct:
			total += line.Price * float64(line.Quantity)
		}
	}
	return total
}

// TotalServiceDurationMinutes sums duration over service lines only.
func (c *Cart) TotalServiceDurationMinutes() int {
	var minutes int
	for _, line := range c.Lines {
		if line.Kind == LineKindService {
			minutes += line.DurationMinutes
		}
	}
	return minutes
}

func (c *Cart) findLine(id string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			return &c.Lines[i]
		}
	}
	return nil
}
