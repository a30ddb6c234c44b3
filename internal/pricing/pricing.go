// Package pricing computes sale totals. The functions are pure over a
// cart snapshot and must be recomputed on every cart mutation, never
// cached.
package pricing

import "github.com/shopspring/decimal"

// TaxRate is the flat VAT rate applied to every sale.
var TaxRate = decimal.RequireFromString("0.05")

// Line is the priced portion of a cart line.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Totals holds the computed amounts for a cart snapshot. No rounding is
// applied here; two-decimal formatting is a display concern.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
}

// Subtotal returns the sum of unit price times quantity over all lines.
func Subtotal(lines []Line) decimal.Decimal {
	sub := decimal.Zero
	for _, l := range lines {
		sub = sub.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sub
}

// Calculate computes subtotal, VAT and total for a cart snapshot.
func Calculate(lines []Line) Totals {
	sub := Subtotal(lines)
	vat := sub.Mul(TaxRate)
	return Totals{
		Subtotal: sub,
		VAT:      vat,
		Total:    sub.Add(vat),
	}
}
