package models

// CartItem is a catalog part plus the quantity chosen by the shopper.
type CartItem struct {
	Part
	Quantity int `json:"quantity"`
}

// Cart is the client-local quantity-by-part mapping. The browser persists it
// in local storage and ships it back on checkout; the server never stores it.
// Items keep insertion order so re-renders are stable.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add inserts the part with quantity 1, or bumps the quantity when the part
// is already in the cart.
func (c *Cart) Add(p Part) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Part: p, Quantity: 1})
}

func (c *Cart) Increment(partID string) {
	for i := range c.Items {
		if c.Items[i].ID == partID {
			c.Items[i].Quantity++
			return
		}
	}
}

// Decrement lowers the quantity by one but never below 1; removing a line
// entirely is Remove's job.
func (c *Cart) Decrement(partID string) {
	for i := range c.Items {
		if c.Items[i].ID == partID && c.Items[i].Quantity > 1 {
			c.Items[i].Quantity--
			return
		}
	}
}

func (c *Cart) Remove(partID string) {
	for i := range c.Items {
		if c.Items[i].ID == partID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Total is the sum of price*quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
