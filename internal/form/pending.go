package form

import "fmt"

// PendingDelete holds the IDs the confirmation dialog asks about.
// An empty value means the dialog is closed.
type PendingDelete struct {
	ids []string
}

// NewPendingDelete copies ids into a pending set.
func NewPendingDelete(ids []string) PendingDelete {
	cp := make([]string, len(ids))
	copy(cp, ids)
	return PendingDelete{ids: cp}
}

// Open reports whether confirmation is being asked.
func (p PendingDelete) Open() bool {
	return len(p.ids) > 0
}

// IDs returns the pending IDs.
func (p PendingDelete) IDs() []string {
	return p.ids
}

// Count returns the number of pending IDs.
func (p PendingDelete) Count() int {
	return len(p.ids)
}

// Title returns the dialog heading.
func (p PendingDelete) Title() string {
	if p.Count() > 1 {
		return fmt.Sprintf("Delete Contact(%d)", p.Count())
	}
	return "Delete Contact"
}

// Message returns the dialog body.
func (p PendingDelete) Message() string {
	if p.Count() > 1 {
		return fmt.Sprintf("Are you sure you want to delete all %d contacts? This action cannot be undone.", p.Count())
	}
	return "Are you sure you want to delete this contact? This action cannot be undone."
}
