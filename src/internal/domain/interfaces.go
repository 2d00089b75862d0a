// Package domain defines the interfaces the HTTP layer depends on and the
// container that wires their implementations together at startup.
package domain

import "github.com/validatedpatterns/reference-api/src/internal/resource"

// RecordStore is the record repository used by the API handlers.
//
// Implementations must be safe for concurrent use and must return copies,
// never references into their own state. Missing ids are reported through the
// boolean results, not errors.
type RecordStore interface {
	// List returns every record in no particular order.
	List() []resource.Record

	// Get returns the record stored under id.
	Get(id string) (resource.Record, bool)

	// Create stores a new record under a generated id with status "active".
	Create(f resource.Fields) resource.Record

	// Update replaces the fields of an existing record. It never inserts.
	Update(id string, f resource.Fields) (resource.Record, bool)

	// Delete removes the record under id and reports whether it existed.
	Delete(id string) bool
}

var _ RecordStore = (*resource.Store)(nil)
