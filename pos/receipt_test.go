package pos

import (
	"strings"
	"testing"
	"time"
)

func sampleReceipt() Receipt {
	return Receipt{
		Merchant: Merchant{
			Name:    "Lakeside Tea House",
			Address: "Lakeside, Pokhara",
			Phone:   "061-520000",
			TaxID:   "PAN 123456789",
		},
		OrderNumber:   42,
		CreatedAt:     time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		CustomerName:  "Ram",
		Table:         "A1",
		PaymentMethod: "cash",
		Lines: []ReceiptLine{
			{Name: "Masala Tea", Quantity: 2, UnitPrice: 15, Total: 30},
			{Name: "Samosa", Quantity: 3, UnitPrice: 25, Total: 75},
		},
		Subtotal:      105,
		Discount:      10.5,
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		Total:         94.5,
	}
}

func TestRenderHTML_ContainsOrderFields(t *testing.T) {
	html, err := sampleReceipt().RenderHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Lakeside Tea House",
		"#42",
		"2025-06-01 09:30",
		"Ram",
		"A1",
		"Masala Tea",
		"2 x NRs 15.00",
		"NRs 105.00",
		"NRs 94.50",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("receipt missing %q", want)
		}
	}
}

func TestRenderHTML_PercentageDiscountLabel(t *testing.T) {
	html, err := sampleReceipt().RenderHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "Discount (10%)") {
		t.Error("percentage discount must be labeled with the entered percent")
	}
	if !strings.Contains(html, "-NRs 10.50") {
		t.Error("discount line must show the absolute amount")
	}
}

func TestRenderHTML_FixedDiscountLabel(t *testing.T) {
	r := sampleReceipt()
	r.DiscountType = DiscountFixed
	r.Discount = 20
	r.DiscountValue = 20
	r.Total = 85

	html, err := r.RenderHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "%)") {
		t.Error("fixed discount must not carry a percent label")
	}
	if !strings.Contains(html, "-NRs 20.00") {
		t.Error("discount line must show the fixed amount")
	}
}

func TestRenderHTML_NoDiscountLineWhenZero(t *testing.T) {
	r := sampleReceipt()
	r.Discount = 0
	r.DiscountValue = 0
	r.Total = 105

	html, err := r.RenderHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "Discount") {
		t.Error("zero discount must not print a discount line")
	}
}

func TestRenderHTML_OptionalFieldsOmitted(t *testing.T) {
	r := sampleReceipt()
	r.CustomerName = ""
	r.Table = ""
	r.PaymentMethod = ""

	html, err := r.RenderHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, label := range []string{"Customer", "Table", "Payment"} {
		if strings.Contains(html, label) {
			t.Errorf("empty %s must be omitted from the receipt", label)
		}
	}
}

func TestRenderHTML_EscapesNames(t *testing.T) {
	r := sampleReceipt()
	r.Lines[0].Name = "<script>alert(1)</script>"

	html, err := r.RenderHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("line names must be escaped")
	}
}

func TestRenderHTML_PrintScriptPresent(t *testing.T) {
	html, err := sampleReceipt().RenderHTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"window.print()", "afterprint", "setTimeout(dispatch, 400)"} {
		if !strings.Contains(html, want) {
			t.Errorf("print script missing %q", want)
		}
	}
}
