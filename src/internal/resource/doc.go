// Package resource holds the in-memory record store behind the example API.
//
// A Store owns the full record set. Every operation takes the store lock for
// its whole duration, so each call is atomic on its own and a List never sees
// a half-applied write. Records are plain values: whatever a caller receives
// is a copy and cannot be used to change stored state.
//
// Lookups never fail with an error. Get and Update report a missing id with a
// false second return, Delete with a false result.
//
//	store := resource.NewStore()
//	rec := store.Create(resource.Fields{Name: "demo"})
//	if _, ok := store.Get(rec.ID); !ok {
//	    // not found
//	}
package resource
