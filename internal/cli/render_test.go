package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/invoiceflow/invoiceflow/internal/domain"
)

func TestRenderInvoice_Golden(t *testing.T) {
	inv := domain.Invoice{
		ID:              "7d7f8a1e-0000-0000-0000-000000000000",
		InvoiceNumber:   "INV-0042",
		Date:            "2024-06-01",
		CustomerName:    "Ravi Kumar",
		CustomerAddress: "7 Lake View",
		LineItems: []domain.LineItem{
			{ID: "li-1", ItemName: "Widget", Quantity: 2, Price: 50, CGSTRate: 9, SGSTRate: 9},
			{ID: "li-2", ItemName: "Consulting", Quantity: 1, Price: 200},
		},
		SubTotal:       300,
		TotalTax:       18,
		DiscountAmount: 10,
		GrandTotal:     308,
		OrganizationDetails: domain.OrganizationDetails{
			CompanyName:        "Acme Traders",
			GSTNumber:          "29ABCDE1234F1Z5",
			Address:            "12 Market Road, Bengaluru",
			ContactDetails:     "accounts@acme.example",
			InvoiceHeaderColor: domain.DefaultHeaderColor,
			ThemeAccentColor:   domain.DefaultAccentColor,
		},
		Notes:  "Thank you for your business.",
		Status: domain.StatusSent,
	}

	var buf bytes.Buffer
	require.NoError(t, renderInvoice(&buf, inv, moneyPrinter("en")))

	g := goldie.New(t)
	g.Assert(t, "invoice_render", buf.Bytes())
}

func TestRenderInvoice_OmitsEmptySections(t *testing.T) {
	inv := domain.Invoice{
		InvoiceNumber: "INV-0001",
		Date:          "2024-01-01",
		CustomerName:  "X",
		LineItems: []domain.LineItem{
			{ItemName: "A", Quantity: 1, Price: 10},
		},
		SubTotal:   10,
		GrandTotal: 10,
		Status:     domain.StatusDraft,
	}

	var buf bytes.Buffer
	require.NoError(t, renderInvoice(&buf, inv, moneyPrinter("en")))

	out := buf.String()
	require.NotContains(t, out, "GSTIN")
	require.NotContains(t, out, "Discount")
	require.Contains(t, out, "Grand total: 10.00")
}
