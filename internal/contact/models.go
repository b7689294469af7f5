package contact

import "strings"

// Contact represents a person in the contact list.
type Contact struct {
	ID           string
	Name         string
	Email        string
	ContactNo    string // optional
	AddressLine1 string
	AddressLine2 string // optional
	Pincode      string
	State        string
}

// Input is a contact without its ID, as submitted from the form.
type Input struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	ContactNo    string `json:"contactNo"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Pincode      string `json:"pincode"`
	State        string `json:"state"`
}

// Changes holds a partial update. A nil field is left untouched.
type Changes struct {
	Name         *string
	Email        *string
	ContactNo    *string
	AddressLine1 *string
	AddressLine2 *string
	Pincode      *string
	State        *string
}

// States lists the regions a contact can be filed under.
var States = []string{
	"Andhra Pradesh",
	"Bihar",
	"Gujarat",
	"Haryana",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Punjab",
}

// New builds a contact from an input and an ID.
func New(id string, in Input) Contact {
	return Contact{
		ID:           id,
		Name:         in.Name,
		Email:        in.Email,
		ContactNo:    in.ContactNo,
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		Pincode:      in.Pincode,
		State:        in.State,
	}
}

// Input returns the editable fields of the contact.
func (c Contact) Input() Input {
	return Input{
		Name:         c.Name,
		Email:        c.Email,
		ContactNo:    c.ContactNo,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		Pincode:      c.Pincode,
		State:        c.State,
	}
}

// Apply returns a copy of c with every present field in ch applied.
// The ID is never changed.
func (c Contact) Apply(ch Changes) Contact {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Name, ch.Name)
	set(&c.Email, ch.Email)
	set(&c.ContactNo, ch.ContactNo)
	set(&c.AddressLine1, ch.AddressLine1)
	set(&c.AddressLine2, ch.AddressLine2)
	set(&c.Pincode, ch.Pincode)
	set(&c.State, ch.State)
	return c
}

// FullAddress joins the non-empty address parts for display.
func (c Contact) FullAddress() string {
	var parts []string
	for _, p := range []string{c.AddressLine1, c.AddressLine2, c.State, c.Pincode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// ChangesFrom builds a change set that replaces every field with the input's value.
func ChangesFrom(in Input) Changes {
	return Changes{
		Name:         &in.Name,
		Email:        &in.Email,
		ContactNo:    &in.ContactNo,
		AddressLine1: &in.AddressLine1,
		AddressLine2: &in.AddressLine2,
		Pincode:      &in.Pincode,
		State:        &in.State,
	}
}
