package pos

import "testing"

func exampleCart() *Cart {
	// qty 2 @ 15 and qty 3 @ 25 -> subtotal 105
	cart := NewCart()
	cart.AddCatalogItem("item-1", "Masala Tea", 15)
	cart.AdjustQuantity("item-1", 1)
	cart.AddCatalogItem("item-2", "Samosa", 25)
	cart.AdjustQuantity("item-2", 2)
	return cart
}

func TestPercentageDiscount(t *testing.T) {
	cart := exampleCart()
	cart.SetDiscountType(DiscountPercentage)
	cart.SetDiscountValue(10)

	if got := cart.DiscountAmount(); got != 10.5 {
		t.Errorf("got discount %v, want 10.5", got)
	}
	if got := cart.Total(); got != 94.5 {
		t.Errorf("got total %v, want 94.5", got)
	}
}

func TestFixedDiscountExceedingSubtotal(t *testing.T) {
	cart := exampleCart()
	cart.SetDiscountType(DiscountFixed)
	cart.SetDiscountValue(200)

	if got := cart.DiscountAmount(); got != 200 {
		t.Errorf("got discount %v, want 200", got)
	}
	if got := cart.Total(); got != 0 {
		t.Errorf("total must clamp to 0, got %v", got)
	}
}

func TestPercentageClampedToHundred(t *testing.T) {
	cart := exampleCart()
	cart.SetDiscountType(DiscountPercentage)
	cart.SetDiscountValue(150)

	if got := cart.DiscountValue(); got != 100 {
		t.Errorf("got value %v, want 100", got)
	}
	if got := cart.Total(); got != 0 {
		t.Errorf("got total %v, want 0", got)
	}
}

func TestNegativeDiscountFloored(t *testing.T) {
	cart := exampleCart()
	cart.SetDiscountValue(-20)

	if got := cart.DiscountValue(); got != 0 {
		t.Errorf("got value %v, want 0", got)
	}
	if got := cart.Total(); got != 105 {
		t.Errorf("got total %v, want 105", got)
	}
}

func TestSwitchToPercentageResetsInvalidValue(t *testing.T) {
	cart := exampleCart()
	cart.SetDiscountType(DiscountFixed)
	cart.SetDiscountValue(150)

	cart.SetDiscountType(DiscountPercentage)
	if got := cart.DiscountValue(); got != 0 {
		t.Errorf("carried fixed 150 must reset in percentage mode, got %v", got)
	}
}

func TestSwitchToPercentageKeepsValidValue(t *testing.T) {
	cart := exampleCart()
	cart.SetDiscountType(DiscountFixed)
	cart.SetDiscountValue(20)

	cart.SetDiscountType(DiscountPercentage)
	if got := cart.DiscountValue(); got != 20 {
		t.Errorf("valid value must survive the switch, got %v", got)
	}
	if got := cart.DiscountAmount(); got != 21 {
		t.Errorf("got discount %v, want 21", got)
	}
}

func TestSwitchToFixedKeepsValue(t *testing.T) {
	cart := exampleCart()
	cart.SetDiscountType(DiscountPercentage)
	cart.SetDiscountValue(50)

	cart.SetDiscountType(DiscountFixed)
	if got := cart.DiscountValue(); got != 50 {
		t.Errorf("got value %v, want 50", got)
	}
	if got := cart.Total(); got != 55 {
		t.Errorf("got total %v, want 55", got)
	}
}

func TestUnknownDiscountTypeIgnored(t *testing.T) {
	cart := exampleCart()
	cart.SetDiscountType("loyalty")

	if got := cart.DiscountType(); got != DiscountFixed {
		t.Errorf("got type %q, want %q", got, DiscountFixed)
	}
}
