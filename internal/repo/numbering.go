package repo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/invoiceflow/invoiceflow/internal/domain"
)

// NumberSource produces the next human-facing invoice number.
//
// The default implementation recomputes the number by scanning the
// current invoice set, which is only correct for a single writer per
// database: two concurrent writers can both observe the same maximum
// and mint duplicate numbers. A persisted-counter implementation can
// be substituted here without changing any caller.
type NumberSource interface {
	Next(ctx context.Context, invoices []domain.Invoice) string
}

// ScanNumberSource derives the next number from existing invoices:
// strip non-digit characters from each stored number, parse what
// remains (unparsable numbers count as 0), take the maximum, and
// format max+1 as "INV-" zero-padded to four digits.
type ScanNumberSource struct{}

func (ScanNumberSource) Next(_ context.Context, invoices []domain.Invoice) string {
	max := 0
	for _, inv := range invoices {
		if n := numericPart(inv.InvoiceNumber); n > max {
			max = n
		}
	}
	return fmt.Sprintf("INV-%04d", max+1)
}

// numericPart extracts the digits of an invoice number. A number with
// no digits at all, or one whose digits overflow int, counts as 0.
func numericPart(invoiceNumber string) int {
	var digits strings.Builder
	for _, r := range invoiceNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
