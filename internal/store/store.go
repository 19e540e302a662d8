// Package store holds the in-memory mapping from parcel names to their
// classified entries. The store is built once at startup and never
// mutated afterwards.
package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/runger/parcel/internal/entry"
)

// NotFoundError reports a lookup for a parcel that does not exist. It
// carries every defined parcel name so the message can guide the user.
type NotFoundError struct {
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("parcel %q not found: no parcels are defined", e.Name)
	}
	return fmt.Sprintf("parcel %q not found. Available parcels: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// Store maps parcel names to ordered entry lists.
type Store struct {
	parcels map[string][]entry.Entry
	names   []string // sorted once at construction
}

// Build classifies every raw entry string and assembles a Store. Entry
// order within each parcel is preserved from the source document; the
// name list is sorted for stable display and completion.
func Build(parcels map[string][]string, c entry.Classifier) *Store {
	s := &Store{
		parcels: make(map[string][]entry.Entry, len(parcels)),
		names:   make([]string, 0, len(parcels)),
	}
	for name, raws := range parcels {
		s.parcels[name] = c.ClassifyAll(raws)
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s
}

// Lookup returns the entries of the named parcel in source order, or a
// *NotFoundError listing all available names.
func (s *Store) Lookup(name string) ([]entry.Entry, error) {
	entries, ok := s.parcels[name]
	if !ok {
		return nil, &NotFoundError{Name: name, Available: s.Names()}
	}
	return entries, nil
}

// Names returns all parcel names in sorted order.
func (s *Store) Names() []string {
	return s.names
}

// Len reports the number of parcels.
func (s *Store) Len() int {
	return len(s.names)
}
