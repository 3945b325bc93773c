package actionlog

// Detail payloads round-trip through JSON, so they are maps rather than
// a closed sum type; these constructors keep the known event shapes in
// one place. Unanticipated events can pass any map to Log directly.

// ItemDetails is the payload for inventory item events.
func ItemDetails(name, id string) map[string]any {
	return map[string]any{"name": name, "id": id}
}

// InvoiceDetails is the payload for invoice events.
func InvoiceDetails(invoiceNumber, id string) map[string]any {
	return map[string]any{"invoiceNumber": invoiceNumber, "id": id}
}
