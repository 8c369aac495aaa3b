package services

import (
	"testing"

	"github.com/google/uuid"

	"tablerunner-api/pos"
)

func TestBuildOrderItems_CatalogLine(t *testing.T) {
	itemID := uuid.New()
	lines := []pos.CartLine{
		{ID: itemID.String(), Name: "Masala Tea", Quantity: 2, UnitPrice: 15, Total: 30},
	}

	items, err := buildOrderItems(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}

	item := items[0]
	if item.ItemID == nil || *item.ItemID != itemID {
		t.Errorf("catalog line must carry the menu item id")
	}
	if item.Name != nil {
		t.Errorf("catalog line must not snapshot the name, got %q", *item.Name)
	}
	if item.Quantity != 2 || item.Price != 15 || item.Total != 30 {
		t.Errorf("line amounts not carried over: %+v", item)
	}
}

func TestBuildOrderItems_OneOffLine(t *testing.T) {
	cart := pos.NewCart()
	line, err := cart.AddOneOffItem("Special Thali", 250)
	if err != nil {
		t.Fatalf("AddOneOffItem: %v", err)
	}

	items, err := buildOrderItems(cart.Lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := items[0]
	if item.ItemID != nil {
		t.Errorf("one-off line must have a NULL item id, got %s", item.ItemID)
	}
	if item.Name == nil || *item.Name != "Special Thali" {
		t.Errorf("one-off line must snapshot its name")
	}
	if item.Price != 250 || item.Total != line.Total {
		t.Errorf("one-off amounts not carried over: %+v", item)
	}
}

func TestBuildOrderItems_InvalidCatalogID(t *testing.T) {
	lines := []pos.CartLine{
		{ID: "not-a-uuid", Name: "Ghost", Quantity: 1, UnitPrice: 10, Total: 10},
	}
	if _, err := buildOrderItems(lines); err == nil {
		t.Error("expected error for non-uuid catalog id")
	}
}

func TestBuildOrderItems_Mixed(t *testing.T) {
	itemID := uuid.New()
	cart := pos.NewCart()
	cart.AddCatalogItem(itemID.String(), "Milk Coffee", 35)
	if _, err := cart.AddOneOffItem("Birthday Cake", 500); err != nil {
		t.Fatalf("AddOneOffItem: %v", err)
	}

	items, err := buildOrderItems(cart.Lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ItemID == nil || items[0].Name != nil {
		t.Errorf("first line should be a catalog row: %+v", items[0])
	}
	if items[1].ItemID != nil || items[1].Name == nil {
		t.Errorf("second line should be a one-off row: %+v", items[1])
	}
}
