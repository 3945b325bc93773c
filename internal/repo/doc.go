// Package repo implements the persisted-entity repositories: the
// organization profile, the inventory, and the invoices. Repositories
// own their storage keys exclusively, enforce entity invariants, heal
// records written under older schema versions at read time, and record
// every mutation in the action log.
//
// Construct the repositories once and pass them by reference to
// whatever layer needs them; there is no ambient global state.
//
// The core assumes a single logical writer per database. Two processes
// mutating the same database can race on read-modify-write (most
// visibly: duplicate invoice numbers from a stale NextInvoiceNumber
// scan). See NumberSource for the substitution point if stronger
// guarantees are ever needed.
package repo
