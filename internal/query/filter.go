// Package query derives the visible contact list from the store and a
// free-text search term.
package query

import (
	"strings"

	"github.com/pdxmph/contact-manager/internal/contact"
)

// Normalize trims and lowercases a raw search term.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Filter returns the contacts whose name, contact number, email or state
// contains term, case-insensitively, in their original order. An empty
// term returns items unchanged. items is never modified.
func Filter(items []contact.Contact, term string) []contact.Contact {
	term = Normalize(term)
	if term == "" {
		return items
	}

	filtered := make([]contact.Contact, 0, len(items))
	for _, c := range items {
		if matches(c, term) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func matches(c contact.Contact, term string) bool {
	return strings.Contains(strings.ToLower(c.Name), term) ||
		(c.ContactNo != "" && strings.Contains(strings.ToLower(c.ContactNo), term)) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(strings.ToLower(c.State), term)
}
