package query

import "github.com/pdxmph/contact-manager/internal/contact"

// Source is the read side of the contact store the cache needs.
type Source interface {
	Items() []contact.Contact
	Revision() uint64
}

// Cache remembers the last filter result so the list can be re-derived on
// every keystroke without rescanning an unchanged store.
type Cache struct {
	src      Source
	valid    bool
	revision uint64
	term     string
	result   []contact.Contact
}

// NewCache creates a cache over src.
func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// Results returns the contacts matching term, recomputing only when the
// store revision or the normalized term changed since the last call.
func (c *Cache) Results(term string) []contact.Contact {
	term = Normalize(term)
	rev := c.src.Revision()
	if c.valid && rev == c.revision && term == c.term {
		return c.result
	}
	c.result = Filter(c.src.Items(), term)
	c.revision = rev
	c.term = term
	c.valid = true
	return c.result
}
