// Package domain defines the persisted entity types for the invoicing
// core: the organization profile, inventory items, invoices with their
// embedded line items, and action log entries.
//
// Field names in JSON are camelCase, matching the storage layout of
// pre-1.0 exports, so an imported snapshot reads back without
// translation. Missing optional fields on
// older records are healed at read time by the repositories, not here.
package domain
