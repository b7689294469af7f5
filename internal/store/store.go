// Package store holds the in-memory contact list and the current
// multi-selection. It is the only place contacts are mutated.
package store

import (
	"io"
	"log/slog"

	"github.com/pdxmph/contact-manager/internal/contact"
)

// maxIDAttempts bounds how often Add asks the generator for a fresh ID
// before falling back to a UUID.
const maxIDAttempts = 8

// Store owns the ordered contacts and the selected IDs.
// It is not safe for concurrent use; the UI drives it from a single goroutine.
type Store struct {
	items    []contact.Contact
	index    map[string]int // id -> position in items
	selected []string
	isSel    map[string]bool
	revision uint64
	newID    IDGenerator
	log      *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithSeed loads initial contacts without validation. Records repeating an
// earlier ID are skipped.
func WithSeed(contacts []contact.Contact) Option {
	return func(s *Store) {
		for _, c := range contacts {
			if _, dup := s.index[c.ID]; dup {
				s.log.Warn("skipping seed contact with duplicate id", "id", c.ID, "name", c.Name)
				continue
			}
			s.index[c.ID] = len(s.items)
			s.items = append(s.items, c)
		}
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger used for mutation tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a store. Options are applied in order, so WithLogger should
// come before WithSeed to see seed warnings.
func New(opts ...Option) *Store {
	s := &Store{
		index: make(map[string]int),
		isSel: make(map[string]bool),
		newID: UUIDGenerator,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Items returns a copy of the contacts in display order.
func (s *Store) Items() []contact.Contact {
	out := make([]contact.Contact, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of contacts.
func (s *Store) Len() int {
	return len(s.items)
}

// Get looks up a contact by ID.
func (s *Store) Get(id string) (contact.Contact, bool) {
	i, ok := s.index[id]
	if !ok {
		return contact.Contact{}, false
	}
	return s.items[i], true
}

// SelectedIDs returns the selected IDs in the order they were selected.
func (s *Store) SelectedIDs() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// IsSelected reports whether id is checked for bulk action.
func (s *Store) IsSelected(id string) bool {
	return s.isSel[id]
}

// Revision increases on every mutation that changed state.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Add appends a new contact with a fresh ID and returns it.
// The input must already have passed contact.Validate.
func (s *Store) Add(in contact.Input) contact.Contact {
	c := contact.New(s.freshID(), in)
	s.index[c.ID] = len(s.items)
	s.items = append(s.items, c)
	s.revision++
	s.log.Debug("contact added", "id", c.ID)
	return c
}

func (s *Store) freshID() string {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if _, taken := s.index[id]; !taken && id != "" {
			return id
		}
		s.log.Debug("id generator collision", "id", id, "attempt", i+1)
	}
	for {
		id := UUIDGenerator()
		if _, taken := s.index[id]; !taken {
			return id
		}
	}
}

// Update applies changes to the contact with the given ID in place.
// It returns false and leaves the store untouched when the ID is unknown.
func (s *Store) Update(id string, ch contact.Changes) bool {
	i, ok := s.index[id]
	if !ok {
		s.log.Debug("update of unknown contact ignored", "id", id)
		return false
	}
	s.items[i] = s.items[i].Apply(ch)
	s.revision++
	s.log.Debug("contact updated", "id", id)
	return true
}

// RemoveMany deletes every contact whose ID is in ids and drops those IDs
// from the selection. Unknown IDs are ignored. It returns how many
// contacts were removed.
func (s *Store) RemoveMany(ids []string) int {
	doomed := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			doomed[id] = true
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	kept := s.items[:0]
	for _, c := range s.items {
		if !doomed[c.ID] {
			kept = append(kept, c)
		}
	}
	// clear the tail so removed records are not retained
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = contact.Contact{}
	}
	s.items = kept
	s.reindex()

	sel := s.selected[:0]
	for _, id := range s.selected {
		if doomed[id] {
			delete(s.isSel, id)
			continue
		}
		sel = append(sel, id)
	}
	s.selected = sel

	s.revision++
	s.log.Debug("contacts removed", "count", len(doomed))
	return len(doomed)
}

func (s *Store) reindex() {
	s.index = make(map[string]int, len(s.items))
	for i, c := range s.items {
		s.index[c.ID] = i
	}
}

// ToggleSelect checks id if unchecked and unchecks it otherwise.
// IDs that are not in the store are ignored.
func (s *Store) ToggleSelect(id string) {
	if _, ok := s.index[id]; !ok {
		s.log.Debug("toggle of unknown contact ignored", "id", id)
		return
	}
	if s.isSel[id] {
		delete(s.isSel, id)
		for i, sid := range s.selected {
			if sid == id {
				s.selected = append(s.selected[:i], s.selected[i+1:]...)
				break
			}
		}
	} else {
		s.isSel[id] = true
		s.selected = append(s.selected, id)
	}
	s.revision++
}

// ClearSelection unchecks everything.
func (s *Store) ClearSelection() {
	if len(s.selected) == 0 {
		return
	}
	s.selected = nil
	s.isSel = make(map[string]bool)
	s.revision++
}
