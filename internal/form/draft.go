package form

import (
	"strings"

	"github.com/pdxmph/contact-manager/internal/contact"
)

const (
	// MaxContactNoDigits caps the contact number as the user types.
	MaxContactNoDigits = 10
	// PincodeDigits caps the pincode as the user types.
	PincodeDigits = 6
)

// Fields is the order fields appear in the modal.
var Fields = []contact.Field{
	contact.FieldName,
	contact.FieldContactNo,
	contact.FieldEmail,
	contact.FieldAddressLine1,
	contact.FieldAddressLine2,
	contact.FieldState,
	contact.FieldPincode,
}

// Label returns the field label and whether the field is required.
func Label(f contact.Field) (string, bool) {
	switch f {
	case contact.FieldName:
		return "Name", true
	case contact.FieldContactNo:
		return "Contact No.", false
	case contact.FieldEmail:
		return "Email", true
	case contact.FieldAddressLine1:
		return "Address Line 1", true
	case contact.FieldAddressLine2:
		return "Address Line 2", false
	case contact.FieldState:
		return "State", true
	case contact.FieldPincode:
		return "Pincode", true
	}
	return string(f), false
}

// Draft is the in-progress form, all fields as free text.
type Draft struct {
	values map[contact.Field]string
}

// NewDraft returns an empty draft.
func NewDraft() Draft {
	return Draft{values: make(map[contact.Field]string)}
}

// DraftFrom fills a draft from an existing contact.
func DraftFrom(c contact.Contact) Draft {
	d := NewDraft()
	d.values[contact.FieldName] = c.Name
	d.values[contact.FieldEmail] = c.Email
	d.values[contact.FieldContactNo] = c.ContactNo
	d.values[contact.FieldAddressLine1] = c.AddressLine1
	d.values[contact.FieldAddressLine2] = c.AddressLine2
	d.values[contact.FieldPincode] = c.Pincode
	d.values[contact.FieldState] = c.State
	return d
}

// Get returns the current text of f.
func (d Draft) Get(f contact.Field) string {
	return d.values[f]
}

// Set stores value for f, shaping digit-only fields first, and returns
// the value actually stored.
func (d *Draft) Set(f contact.Field, value string) string {
	if d.values == nil {
		d.values = make(map[contact.Field]string)
	}
	switch f {
	case contact.FieldContactNo:
		value = SanitizeDigits(value, MaxContactNoDigits)
	case contact.FieldPincode:
		value = SanitizeDigits(value, PincodeDigits)
	}
	d.values[f] = value
	return value
}

// Raw returns the draft as an unvalidated input, untrimmed.
func (d Draft) Raw() contact.Input {
	return contact.Input{
		Name:         d.Get(contact.FieldName),
		Email:        d.Get(contact.FieldEmail),
		ContactNo:    d.Get(contact.FieldContactNo),
		AddressLine1: d.Get(contact.FieldAddressLine1),
		AddressLine2: d.Get(contact.FieldAddressLine2),
		Pincode:      d.Get(contact.FieldPincode),
		State:        d.Get(contact.FieldState),
	}
}

// Input returns the trimmed input that gets committed after validation.
func (d Draft) Input() contact.Input {
	raw := d.Raw()
	return contact.Input{
		Name:         strings.TrimSpace(raw.Name),
		Email:        strings.TrimSpace(raw.Email),
		ContactNo:    raw.ContactNo,
		AddressLine1: strings.TrimSpace(raw.AddressLine1),
		AddressLine2: strings.TrimSpace(raw.AddressLine2),
		Pincode:      strings.TrimSpace(raw.Pincode),
		State:        strings.TrimSpace(raw.State),
	}
}

// SanitizeDigits drops every non-digit and truncates to limit digits.
func SanitizeDigits(value string, limit int) string {
	var b strings.Builder
	n := 0
	for _, r := range value {
		if n == limit {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}

// CycleState moves the state selection by step through "" and contact.States.
// "" is the "Enter State" placeholder; unknown values restart from it.
func CycleState(current string, step int) string {
	options := append([]string{""}, contact.States...)
	idx := 0
	for i, s := range options {
		if s == current {
			idx = i
			break
		}
	}
	n := len(options)
	idx = ((idx+step)%n + n) % n
	return options[idx]
}
