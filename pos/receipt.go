package pos

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"
)

// Merchant is the fixed header block printed on every receipt.
type Merchant struct {
	Name    string
	Address string
	Phone   string
	TaxID   string
}

// MerchantFromEnv reads the receipt header from the environment, falling
// back to demo values so a fresh checkout still prints something sensible.
func MerchantFromEnv() Merchant {
	return Merchant{
		Name:    envOr("MERCHANT_NAME", "TableRunner Hub"),
		Address: envOr("MERCHANT_ADDRESS", "Lakeside, Pokhara"),
		Phone:   envOr("MERCHANT_PHONE", "061-520000"),
		TaxID:   envOr("MERCHANT_TAX_ID", "PAN 000000000"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// Receipt is everything needed to render one printable order. It is built
// either from a cart (save-and-print) or from a persisted order row; the
// order number is always the one the store assigned.
type Receipt struct {
	Merchant      Merchant
	OrderNumber   int
	CreatedAt     time.Time
	CustomerName  string
	Table         string
	PaymentMethod string
	Lines         []ReceiptLine
	Subtotal      float64
	Discount      float64
	DiscountType  string
	DiscountValue float64
	Total         float64
}

// DiscountLabel names the discount line: the entered percentage in
// percentage mode, plain currency otherwise.
func (r Receipt) DiscountLabel() string {
	if r.DiscountType == DiscountPercentage {
		return fmt.Sprintf("Discount (%.0f%%)", r.DiscountValue)
	}
	return "Discount"
}

// HasDiscount controls whether the discount line is printed at all.
func (r Receipt) HasDiscount() bool { return r.Discount > 0 }

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("NRs %.2f", v) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Order #{{.OrderNumber}}</title>
<style>
  @page { size: 78mm auto; margin: 0; }
  body { width: 78mm; margin: 0 auto; padding: 4mm 3mm; font-family: "Courier New", monospace; font-size: 12px; color: #000; }
  .center { text-align: center; }
  .rule { border-top: 1px dashed #000; margin: 4px 0; }
  table { width: 100%; border-collapse: collapse; }
  td { padding: 1px 0; vertical-align: top; }
  .num { text-align: right; white-space: nowrap; }
  .total td { font-weight: bold; font-size: 13px; }
</style>
</head>
<body>
<div class="center">
  <div style="font-weight:bold;font-size:14px">{{.Merchant.Name}}</div>
  <div>{{.Merchant.Address}}</div>
  <div>Tel: {{.Merchant.Phone}}</div>
  <div>{{.Merchant.TaxID}}</div>
</div>
<div class="rule"></div>
<table>
  <tr><td>Order</td><td class="num">#{{.OrderNumber}}</td></tr>
  <tr><td>Date</td><td class="num">{{.CreatedAt.Format "2006-01-02 15:04"}}</td></tr>
  {{- if .CustomerName}}
  <tr><td>Customer</td><td class="num">{{.CustomerName}}</td></tr>
  {{- end}}
  {{- if .Table}}
  <tr><td>Table</td><td class="num">{{.Table}}</td></tr>
  {{- end}}
  {{- if .PaymentMethod}}
  <tr><td>Payment</td><td class="num">{{.PaymentMethod}}</td></tr>
  {{- end}}
</table>
<div class="rule"></div>
<table>
  {{- range .Lines}}
  <tr>
    <td colspan="2">{{.Name}}</td>
  </tr>
  <tr>
    <td>{{.Quantity}} x {{money .UnitPrice}}</td>
    <td class="num">{{money .Total}}</td>
  </tr>
  {{- end}}
</table>
<div class="rule"></div>
<table>
  <tr><td>Subtotal</td><td class="num">{{money .Subtotal}}</td></tr>
  {{- if .HasDiscount}}
  <tr><td>{{.DiscountLabel}}</td><td class="num">-{{money .Discount}}</td></tr>
  {{- end}}
  <tr class="total"><td>TOTAL</td><td class="num">{{money .Total}}</td></tr>
</table>
<div class="rule"></div>
<div class="center">Thank you! Please visit again.</div>
<script>
(function () {
  var printed = false;
  var done = false;
  function finish() {
    if (done) return;
    done = true;
    window.close();
  }
  function dispatch() {
    if (printed) return;
    printed = true;
    window.print();
  }
  window.addEventListener("afterprint", finish);
  window.addEventListener("focus", finish);
  if (document.readyState === "complete") {
    dispatch();
  } else {
    window.addEventListener("load", dispatch);
    // load may never fire for a synthetically written document
    setTimeout(dispatch, 400);
  }
})();
</script>
</body>
</html>
`))

// RenderHTML renders the receipt as a self-contained printable document.
// The embedded script triggers the host print facility once the document is
// ready (with a short fallback timer) and tears itself down after printing
// or when focus returns, so a cancelled dialog also cleans up.
func (r Receipt) RenderHTML() (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.String(), nil
}
