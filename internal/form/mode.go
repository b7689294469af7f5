// Package form models the transient state behind the add/edit modal and
// the delete confirmation: which mode the modal is in, the draft being
// typed, and the IDs waiting for confirmation.
package form

// Mode is the modal state. It is one of Closed, Add or Edit.
type Mode interface {
	isMode()
}

// Closed means no modal is shown.
type Closed struct{}

// Add means the modal creates a new contact.
type Add struct{}

// Edit means the modal edits the contact with ID Target.
type Edit struct {
	Target string
}

func (Closed) isMode() {}
func (Add) isMode()    {}
func (Edit) isMode()   {}

// IsOpen reports whether m shows the modal.
func IsOpen(m Mode) bool {
	switch m.(type) {
	case Add, Edit:
		return true
	default:
		return false
	}
}

// Title returns the modal heading for m.
func Title(m Mode) string {
	if _, ok := m.(Edit); ok {
		return "Edit Contact"
	}
	return "Add Contact"
}

// SubmitLabel returns the primary button label for m.
func SubmitLabel(m Mode) string {
	if _, ok := m.(Edit); ok {
		return "Save Changes"
	}
	return "Add Contact"
}
