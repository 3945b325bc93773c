// Package billing holds the pure invoice arithmetic: totals over line
// items and the price <-> tax-inclusive-price conversions. Every
// function is deterministic and side-effect free, so the presentation
// layer can call them continuously while the user edits.
//
// No rounding is applied here beyond ordinary floating point; display
// rounding (two decimals) belongs at the output boundary.
package billing

import "github.com/invoiceflow/invoiceflow/internal/domain"

// Totals is the derived financial summary of an invoice.
// GrandTotal = SubTotal + TotalTax - discount, exactly.
type Totals struct {
	SubTotal   float64 `json:"subTotal"`
	TotalTax   float64 `json:"totalTax"`
	GrandTotal float64 `json:"grandTotal"`
}

// ComputeTotals derives the invoice totals from its line items and a
// flat discount amount.
func ComputeTotals(items []domain.LineItem, discountAmount float64) Totals {
	var subTotal, totalTax float64
	for _, it := range items {
		amount := float64(it.Quantity) * it.Price
		subTotal += amount
		totalTax += amount * (it.CGSTRate + it.SGSTRate) / 100
	}
	return Totals{
		SubTotal:   subTotal,
		TotalTax:   totalTax,
		GrandTotal: subTotal + totalTax - discountAmount,
	}
}

// LineTotal returns the tax-inclusive total for a single line item:
// quantity * price * (1 + (cgst+sgst)/100).
func LineTotal(it domain.LineItem) float64 {
	return float64(it.Quantity) * TaxInclusivePrice(it.Price, it.CGSTRate, it.SGSTRate)
}

// TaxInclusivePrice converts a pre-tax unit price to its tax-inclusive
// final price given the two tax-rate percentages.
func TaxInclusivePrice(price, cgstRate, sgstRate float64) float64 {
	return price * (1 + (cgstRate+sgstRate)/100)
}

// PreTaxPrice converts a tax-inclusive final price back to the pre-tax
// unit price. Which direction applies is the caller's decision; the two
// conversions are deliberately separate functions rather than a single
// "recalculate" keyed off edit history.
//
// A combined rate of -100% would make the divisor zero; that cannot
// occur with valid non-negative rates, but it must not panic, so the
// guard returns 0.
func PreTaxPrice(finalPrice, cgstRate, sgstRate float64) float64 {
	divisor := 1 + (cgstRate+sgstRate)/100
	if divisor == 0 {
		return 0
	}
	return finalPrice / divisor
}
