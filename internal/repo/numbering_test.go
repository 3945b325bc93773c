package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoiceflow/invoiceflow/internal/domain"
)

func TestScanNumberSource_EmptySet(t *testing.T) {
	got := ScanNumberSource{}.Next(context.Background(), nil)
	assert.Equal(t, "INV-0001", got)
}

func TestScanNumberSource_MaxPlusOne(t *testing.T) {
	invoices := []domain.Invoice{
		{InvoiceNumber: "INV-0003"},
		{InvoiceNumber: "INV-0012"},
		{InvoiceNumber: "INV-0007"},
	}
	got := ScanNumberSource{}.Next(context.Background(), invoices)
	assert.Equal(t, "INV-0013", got)
}

func TestScanNumberSource_UnparsableCountsAsZero(t *testing.T) {
	invoices := []domain.Invoice{
		{InvoiceNumber: "DRAFT"},
		{InvoiceNumber: ""},
	}
	got := ScanNumberSource{}.Next(context.Background(), invoices)
	assert.Equal(t, "INV-0001", got)
}

func TestScanNumberSource_StripsNonDigits(t *testing.T) {
	invoices := []domain.Invoice{
		{InvoiceNumber: "2024/INV/15"}, // digits collapse to 202415
	}
	got := ScanNumberSource{}.Next(context.Background(), invoices)
	assert.Equal(t, "INV-202416", got)
}

func TestScanNumberSource_NoPaddingPastFourDigits(t *testing.T) {
	invoices := []domain.Invoice{{InvoiceNumber: "INV-9999"}}
	got := ScanNumberSource{}.Next(context.Background(), invoices)
	assert.Equal(t, "INV-10000", got)
}
