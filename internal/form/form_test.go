package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdxmph/contact-manager/internal/contact"
)

func TestModeHelpers(t *testing.T) {
	assert.False(t, IsOpen(Closed{}))
	assert.True(t, IsOpen(Add{}))
	assert.True(t, IsOpen(Edit{Target: "1"}))

	assert.Equal(t, "Add Contact", Title(Add{}))
	assert.Equal(t, "Edit Contact", Title(Edit{Target: "1"}))
	assert.Equal(t, "Add Contact", SubmitLabel(Add{}))
	assert.Equal(t, "Save Changes", SubmitLabel(Edit{Target: "1"}))
}

func TestSanitizeDigits(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"98734-83332", 10, "9873483332"},
		{"+91 98734 83332", 10, "9198734833"},
		{"abc", 10, ""},
		{"16 00 02 9", 6, "160002"},
		{"", 6, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeDigits(tt.in, tt.limit), tt.in)
	}
}

func TestDraftSetShapesDigitFields(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, "1234567890", d.Set(contact.FieldContactNo, "12-345-678-90-12"))
	assert.Equal(t, "560034", d.Set(contact.FieldPincode, "560 0345"))
	assert.Equal(t, " Ada ", d.Set(contact.FieldName, " Ada "))
	assert.Equal(t, "1234567890", d.Get(contact.FieldContactNo))
}

func TestDraftInputTrims(t *testing.T) {
	var d Draft
	d.Set(contact.FieldName, "  Ada Lovelace ")
	d.Set(contact.FieldEmail, " ada@example.com ")
	d.Set(contact.FieldAddressLine1, " 12 Analytical St ")
	d.Set(contact.FieldAddressLine2, "   ")
	d.Set(contact.FieldPincode, "110001")
	d.Set(contact.FieldState, "Kerala")

	assert.Equal(t, contact.Input{
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		AddressLine1: "12 Analytical St",
		Pincode:      "110001",
		State:        "Kerala",
	}, d.Input())
	assert.Equal(t, " ada@example.com ", d.Raw().Email)
}

func TestDraftFromContactRoundTrips(t *testing.T) {
	c := contact.Contact{
		ID:           "4",
		Name:         "Jatin Malhotra",
		Email:        "jatin.malhotra@gmail.com",
		ContactNo:    "9123445332",
		AddressLine1: "Sector 10, Gurugram",
		Pincode:      "122008",
		State:        "Haryana",
	}
	assert.Equal(t, c.Input(), DraftFrom(c).Input())
}

func TestCycleState(t *testing.T) {
	assert.Equal(t, "Andhra Pradesh", CycleState("", 1))
	assert.Equal(t, "Punjab", CycleState("", -1))
	assert.Equal(t, "", CycleState("Punjab", 1))
	assert.Equal(t, "Gujarat", CycleState("Bihar", 1))
	assert.Equal(t, "Andhra Pradesh", CycleState("Maharashtra", 1))
}

func TestPendingDeleteText(t *testing.T) {
	var closed PendingDelete
	assert.False(t, closed.Open())

	single := NewPendingDelete([]string{"3"})
	assert.True(t, single.Open())
	assert.Equal(t, "Delete Contact", single.Title())
	assert.Equal(t, "Are you sure you want to delete this contact? This action cannot be undone.", single.Message())

	bulk := NewPendingDelete([]string{"1", "2", "5"})
	assert.Equal(t, "Delete Contact(3)", bulk.Title())
	assert.Equal(t, "Are you sure you want to delete all 3 contacts? This action cannot be undone.", bulk.Message())
}

func TestPendingDeleteCopiesIDs(t *testing.T) {
	src := []string{"1", "2"}
	p := NewPendingDelete(src)
	src[0] = "9"
	assert.Equal(t, []string{"1", "2"}, p.IDs())
}
