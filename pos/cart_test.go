package pos

import (
	"errors"
	"testing"
)

func TestAddCatalogItem_NewLine(t *testing.T) {
	cart := NewCart()
	cart.AddCatalogItem("item-1", "Masala Tea", 15)

	if len(cart.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(cart.Lines))
	}
	line := cart.Lines[0]
	if line.Quantity != 1 {
		t.Errorf("got quantity %d, want 1", line.Quantity)
	}
	if line.Total != 15 {
		t.Errorf("got total %v, want 15", line.Total)
	}
}

func TestAddCatalogItem_ExistingLineIncrements(t *testing.T) {
	cart := NewCart()
	cart.AddCatalogItem("item-1", "Masala Tea", 15)
	cart.AddCatalogItem("item-1", "Masala Tea", 15)

	if len(cart.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 2 {
		t.Errorf("got quantity %d, want 2", cart.Lines[0].Quantity)
	}
	if cart.Lines[0].Total != 30 {
		t.Errorf("got total %v, want 30", cart.Lines[0].Total)
	}
}

func TestAddOneOffItem(t *testing.T) {
	cart := NewCart()
	line, err := cart.AddOneOffItem("Special Thali", 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsOneOff(line.ID) {
		t.Errorf("expected one-off marker on id %q", line.ID)
	}
	if line.Quantity != 1 || line.Total != 120 {
		t.Errorf("got qty %d total %v, want 1 and 120", line.Quantity, line.Total)
	}
}

func TestAddOneOffItem_Rejections(t *testing.T) {
	cart := NewCart()

	if _, err := cart.AddOneOffItem("   ", 50); !errors.Is(err, ErrEmptyName) {
		t.Errorf("got %v, want ErrEmptyName", err)
	}
	if _, err := cart.AddOneOffItem("Thali", 0); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("got %v, want ErrInvalidPrice", err)
	}
	if _, err := cart.AddOneOffItem("Thali", -5); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("got %v, want ErrInvalidPrice", err)
	}
	if len(cart.Lines) != 0 {
		t.Errorf("rejected items must not be added, got %d lines", len(cart.Lines))
	}
}

func TestAdjustQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddCatalogItem("item-1", "Samosa", 25)
	cart.AdjustQuantity("item-1", 2)

	if cart.Lines[0].Quantity != 3 {
		t.Errorf("got quantity %d, want 3", cart.Lines[0].Quantity)
	}
	if cart.Lines[0].Total != 75 {
		t.Errorf("got total %v, want 75", cart.Lines[0].Total)
	}

	cart.AdjustQuantity("item-1", -3)
	if len(cart.Lines) != 0 {
		t.Errorf("line reaching zero must be removed, got %d lines", len(cart.Lines))
	}
}

func TestAdjustQuantity_NeverNegative(t *testing.T) {
	cart := NewCart()
	cart.AddCatalogItem("item-1", "Samosa", 25)
	cart.AdjustQuantity("item-1", -10)

	if len(cart.Lines) != 0 {
		t.Fatalf("got %d lines, want 0", len(cart.Lines))
	}
	if cart.Subtotal() != 0 {
		t.Errorf("got subtotal %v, want 0", cart.Subtotal())
	}
}

func TestRemoveLine(t *testing.T) {
	cart := NewCart()
	cart.AddCatalogItem("item-1", "Samosa", 25)
	cart.AddCatalogItem("item-2", "Sandwich", 40)
	cart.RemoveLine("item-1")

	if len(cart.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(cart.Lines))
	}
	if cart.Lines[0].ID != "item-2" {
		t.Errorf("wrong line removed, remaining id %q", cart.Lines[0].ID)
	}
}

func TestSubtotal_AlwaysSumOfLineTotals(t *testing.T) {
	cart := NewCart()
	cart.AddCatalogItem("item-1", "Masala Tea", 15)
	cart.AdjustQuantity("item-1", 1) // qty 2 @ 15
	cart.AddCatalogItem("item-2", "Samosa", 25)
	cart.AdjustQuantity("item-2", 2) // qty 3 @ 25

	if got := cart.Subtotal(); got != 105 {
		t.Errorf("got subtotal %v, want 105", got)
	}

	var sum float64
	for _, l := range cart.Lines {
		if l.Quantity < 0 {
			t.Errorf("line %q has negative quantity %d", l.ID, l.Quantity)
		}
		sum += l.Total
	}
	if sum != cart.Subtotal() {
		t.Errorf("subtotal %v does not match line sum %v", cart.Subtotal(), sum)
	}
}

func TestClear(t *testing.T) {
	cart := NewCart()
	cart.AddCatalogItem("item-1", "Masala Tea", 15)
	name := "Ram"
	table := "A1"
	cart.CustomerName = &name
	cart.TableNumber = &table
	cart.SetDiscountType(DiscountPercentage)
	cart.SetDiscountValue(10)

	cart.Clear()

	if len(cart.Lines) != 0 {
		t.Errorf("got %d lines after clear, want 0", len(cart.Lines))
	}
	if cart.CustomerName != nil || cart.TableNumber != nil {
		t.Error("metadata must reset on clear")
	}
	if cart.DiscountType() != DiscountFixed || cart.DiscountValue() != 0 {
		t.Errorf("discount must reset on clear, got %s %v", cart.DiscountType(), cart.DiscountValue())
	}
}
