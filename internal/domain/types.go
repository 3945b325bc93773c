package domain

import "time"

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft InvoiceStatus = "draft"
	StatusSent  InvoiceStatus = "sent"
	StatusPaid  InvoiceStatus = "paid"
	StatusVoid  InvoiceStatus = "void"
)

// ValidStatus reports whether s is one of the known invoice statuses.
func ValidStatus(s InvoiceStatus) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusVoid:
		return true
	}
	return false
}

// OrganizationDetails is the singleton company/branding profile.
//
// The color fields are either empty or "#RRGGBB"; empty values are
// backfilled with the fixed defaults on read (see Normalized).
type OrganizationDetails struct {
	CompanyName        string `json:"companyName"`
	CompanyLogo        string `json:"companyLogo,omitempty"` // data URI or reference
	GSTNumber          string `json:"gstNumber,omitempty"`
	Address            string `json:"address"`
	ContactDetails     string `json:"contactDetails"`
	InvoiceHeaderColor string `json:"invoiceHeaderColor,omitempty"`
	ThemeAccentColor   string `json:"themeAccentColor,omitempty"`
}

// InventoryItem is a product or service that can be placed on an invoice.
// Price is the pre-tax unit price. CGSTRate/SGSTRate are percentages
// (9 means 9%) used as defaults when the item is pulled onto a line item.
type InventoryItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CGSTRate    float64 `json:"cgstRate,omitempty"`
	SGSTRate    float64 `json:"sgstRate,omitempty"`
	Description string  `json:"description,omitempty"`
}

// LineItem is one priced entry on an invoice. It is embedded in the
// invoice document and never persisted independently. InventoryItemID,
// when set, is a lookup back-reference, not ownership: deleting the
// inventory item does not touch existing invoices.
type LineItem struct {
	ID              string  `json:"id"`
	InventoryItemID string  `json:"inventoryItemId,omitempty"`
	ItemName        string  `json:"itemName"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	CGSTRate        float64 `json:"cgstRate"`
	SGSTRate        float64 `json:"sgstRate"`
}

// Invoice is a generated invoice document.
//
// OrganizationDetails is a snapshot taken when the invoice was created;
// later edits to the organization profile must not change how an
// existing invoice renders. InvoiceNumber is the human-facing sequence
// number (INV-0001, ...), distinct from the internal ID.
type Invoice struct {
	ID                  string              `json:"id"`
	InvoiceNumber       string              `json:"invoiceNumber"`
	Date                string              `json:"date"` // ISO 8601
	CustomerName        string              `json:"customerName"`
	CustomerAddress     string              `json:"customerAddress,omitempty"`
	LineItems           []LineItem          `json:"lineItems"`
	SubTotal            float64             `json:"subTotal"`
	TotalTax            float64             `json:"totalTax"`
	DiscountAmount      float64             `json:"discountAmount"`
	GrandTotal          float64             `json:"grandTotal"`
	OrganizationDetails OrganizationDetails `json:"organizationDetails"`
	Notes               string              `json:"notes,omitempty"`
	Status              InvoiceStatus       `json:"status"`
}

// ActionLogEntry is one record in the bounded audit trail. Entries are
// never edited after creation. Details is an open key/value payload;
// use the typed constructors in package actionlog for known events.
type ActionLogEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
}
