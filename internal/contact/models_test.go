package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyKeepsIDAndAbsentFields(t *testing.T) {
	c := New("7", Input{
		Name:         "Priya Sharma",
		Email:        "example.priya@gmail.com",
		ContactNo:    "9873483332",
		AddressLine1: "Plot No. 57",
		AddressLine2: "Chandigarh",
		Pincode:      "160002",
		State:        "Punjab",
	})

	name := "Priya S."
	blank := ""
	got := c.Apply(Changes{Name: &name, AddressLine2: &blank})

	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "Priya S.", got.Name)
	assert.Equal(t, "", got.AddressLine2)
	assert.Equal(t, c.Email, got.Email)
	assert.Equal(t, c.ContactNo, got.ContactNo)
	assert.Equal(t, "Priya Sharma", c.Name, "original must be untouched")
}

func TestChangesFromReplacesEverything(t *testing.T) {
	c := New("1", Input{Name: "Old", Email: "old@x.com", ContactNo: "123"})
	in := Input{Name: "New", Email: "new@x.com", AddressLine1: "A", Pincode: "123456", State: "Bihar"}

	got := c.Apply(ChangesFrom(in))

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, in, got.Input())
}

func TestFullAddressSkipsEmptyParts(t *testing.T) {
	c := Contact{AddressLine1: "Sector 10, Gurugram", State: "Haryana", Pincode: "122008"}
	assert.Equal(t, "Sector 10, Gurugram, Haryana, 122008", c.FullAddress())

	assert.Equal(t, "", Contact{}.FullAddress())
}
