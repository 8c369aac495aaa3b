package pos

const (
	DiscountFixed      = "fixed"
	DiscountPercentage = "percentage"
)

// SetDiscountType switches the discount mode. A carried value that would be
// invalid in the new mode (e.g. a fixed 150 switched into percentage mode)
// resets to zero instead of sitting silently out of range.
func (c *Cart) SetDiscountType(t string) {
	if t != DiscountFixed && t != DiscountPercentage {
		return
	}
	if t == DiscountPercentage && (c.discountValue < 0 || c.discountValue > 100) {
		c.discountValue = 0
	}
	c.discountType = t
}

// SetDiscountValue stores the user-entered discount value. Percentage values
// are clamped to [0, 100]; fixed values are floored at zero.
func (c *Cart) SetDiscountValue(v float64) {
	if v < 0 {
		v = 0
	}
	if c.discountType == DiscountPercentage && v > 100 {
		v = 100
	}
	c.discountValue = v
}

func (c *Cart) DiscountType() string   { return c.discountType }
func (c *Cart) DiscountValue() float64 { return c.discountValue }

// DiscountAmount resolves the entered value into an absolute currency
// amount. Fixed amounts are not capped here; Total clamps at zero.
func (c *Cart) DiscountAmount() float64 {
	switch c.discountType {
	case DiscountPercentage:
		return c.Subtotal() * c.discountValue / 100
	default:
		return c.discountValue
	}
}

// Total is the amount due after discount. A discount exceeding the subtotal
// clamps to a zero total rather than raising an error.
func (c *Cart) Total() float64 {
	total := c.Subtotal() - c.DiscountAmount()
	if total < 0 {
		return 0
	}
	return total
}
