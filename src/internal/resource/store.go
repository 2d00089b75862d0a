package resource

import (
	"sync"

	"github.com/google/uuid"
)

// Store is a concurrency-safe, in-memory collection of records keyed by id.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
	newID   func() string
}

// Option configures a Store.
type Option func(*storeOptions)

type storeOptions struct {
	newID func() string
	seed  []Record
}

// WithIDGenerator replaces the UUID generator used by Create.
func WithIDGenerator(fn func() string) Option {
	return func(o *storeOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithSeed replaces the initial records. Calling it with no records starts
// the store empty. Records with an empty id are skipped.
func WithSeed(records ...Record) Option {
	return func(o *storeOptions) {
		o.seed = records
	}
}

// NewStore creates a store holding DefaultSeed unless WithSeed says otherwise.
func NewStore(opts ...Option) *Store {
	o := storeOptions{
		newID: uuid.NewString,
		seed:  DefaultSeed(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		records: make(map[string]Record, len(o.seed)),
		newID:   o.newID,
	}
	for _, rec := range o.seed {
		if rec.ID == "" {
			continue
		}
		s.records[rec.ID] = rec
	}
	return s
}

// List returns a snapshot of all records in no particular order.
func (s *Store) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out
}

// Get returns the record stored under id.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

// Create stores f under a freshly generated id with status forced to
// StatusActive and returns the stored record.
func (s *Store) Create(f Fields) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for id == "" || s.exists(id) {
		id = s.newID()
	}

	rec := f.withID(id)
	rec.Status = StatusActive
	s.records[id] = rec
	return rec
}

// Update replaces every caller-controlled field of the record under id.
// It never inserts: a missing id returns false.
func (s *Store) Update(id string, f Fields) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(id) {
		return Record{}, false
	}
	rec := f.withID(id)
	s.records[id] = rec
	return rec, true
}

// Delete removes the record under id and reports whether it was present.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists(id) {
		return false
	}
	delete(s.records, id)
	return true
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// exists must be called with s.mu held.
func (s *Store) exists(id string) bool {
	_, ok := s.records[id]
	return ok
}
