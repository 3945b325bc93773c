package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/message"

	"github.com/invoiceflow/invoiceflow/internal/billing"
	"github.com/invoiceflow/invoiceflow/internal/domain"
)

// renderInvoice writes the plain-text rendering of an invoice: the
// organization snapshot header, customer block, line item table, and
// totals. The snapshot embedded in the invoice is used, never the
// current profile.
func renderInvoice(w io.Writer, inv domain.Invoice, p *message.Printer) error {
	org := inv.OrganizationDetails

	fmt.Fprintln(w, org.CompanyName)
	if org.Address != "" {
		fmt.Fprintln(w, org.Address)
	}
	if org.GSTNumber != "" {
		fmt.Fprintf(w, "GSTIN: %s\n", org.GSTNumber)
	}
	if org.ContactDetails != "" {
		fmt.Fprintln(w, org.ContactDetails)
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))

	fmt.Fprintf(w, "Invoice:  %s (%s)\n", inv.InvoiceNumber, inv.Status)
	fmt.Fprintf(w, "Date:     %s\n", inv.Date)
	fmt.Fprintf(w, "Bill to:  %s\n", inv.CustomerName)
	if inv.CustomerAddress != "" {
		fmt.Fprintf(w, "          %s\n", inv.CustomerAddress)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tQTY\tPRICE\tCGST\tSGST\tAMOUNT")
	for _, it := range inv.LineItems {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.2f%%\t%.2f%%\t%s\n",
			it.ItemName, it.Quantity, formatMoney(p, it.Price),
			it.CGSTRate, it.SGSTRate, formatMoney(p, billing.LineTotal(it)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Subtotal:    %s\n", formatMoney(p, inv.SubTotal))
	fmt.Fprintf(w, "Tax:         %s\n", formatMoney(p, inv.TotalTax))
	if inv.DiscountAmount != 0 {
		fmt.Fprintf(w, "Discount:    -%s\n", formatMoney(p, inv.DiscountAmount))
	}
	fmt.Fprintf(w, "Grand total: %s\n", formatMoney(p, inv.GrandTotal))

	if inv.Notes != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, inv.Notes)
	}
	return nil
}
