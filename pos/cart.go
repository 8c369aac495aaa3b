package pos

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// OneOffPrefix marks cart line ids that are not backed by a menu item.
// Lines carrying it persist with a NULL item_id and an inline name.
const OneOffPrefix = "oneoff-"

var (
	ErrEmptyName    = errors.New("one-off item name is required")
	ErrInvalidPrice = errors.New("one-off item price must be a positive number")
)

type CartLine struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Cart is the working state of a not-yet-saved order. Subtotal is always
// derived from the current lines, never stored.
type Cart struct {
	Lines         []CartLine
	CustomerName  *string
	TableGroup    *string
	TableNumber   *string
	PaymentMethod *string

	discountType  string
	discountValue float64
}

func NewCart() *Cart {
	return &Cart{discountType: DiscountFixed}
}

// AddCatalogItem appends a line for a menu item, or bumps the quantity
// if the item is already in the cart.
func (c *Cart) AddCatalogItem(id, name string, price float64) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines[i].Quantity++
			c.Lines[i].Total = float64(c.Lines[i].Quantity) * c.Lines[i].UnitPrice
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ID:        id,
		Name:      name,
		Quantity:  1,
		UnitPrice: price,
		Total:     price,
	})
}

// AddOneOffItem appends a line that is not backed by the menu.
func (c *Cart) AddOneOffItem(name string, price float64) (CartLine, error) {
	if strings.TrimSpace(name) == "" {
		return CartLine{}, ErrEmptyName
	}
	if price <= 0 {
		return CartLine{}, ErrInvalidPrice
	}
	line := CartLine{
		ID:        OneOffPrefix + uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Quantity:  1,
		UnitPrice: price,
		Total:     price,
	}
	c.Lines = append(c.Lines, line)
	return line, nil
}

// AdjustQuantity changes a line's quantity by delta, floored at zero.
// A line that reaches zero is removed.
func (c *Cart) AdjustQuantity(lineID string, delta int) {
	for i := range c.Lines {
		if c.Lines[i].ID != lineID {
			continue
		}
		q := c.Lines[i].Quantity + delta
		if q <= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Quantity = q
		c.Lines[i].Total = float64(q) * c.Lines[i].UnitPrice
		return
	}
}

func (c *Cart) RemoveLine(lineID string) {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear drops all lines and resets discount and order metadata.
func (c *Cart) Clear() {
	c.Lines = nil
	c.CustomerName = nil
	c.TableGroup = nil
	c.TableNumber = nil
	c.PaymentMethod = nil
	c.discountType = DiscountFixed
	c.discountValue = 0
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Total
	}
	return sum
}

// IsOneOff reports whether a line id carries the one-off marker.
func IsOneOff(id string) bool {
	return strings.HasPrefix(id, OneOffPrefix)
}
