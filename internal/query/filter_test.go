package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/contact-manager/internal/contact"
	"github.com/pdxmph/contact-manager/internal/store"
)

func ids(cs []contact.Contact) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestFilterEmptyTermReturnsItems(t *testing.T) {
	items := store.Seed()
	assert.Equal(t, items, Filter(items, ""))
	assert.Equal(t, items, Filter(items, "   "))
}

func TestFilterByState(t *testing.T) {
	items := store.Seed()
	got := Filter(items, "punjab")
	assert.Equal(t, []string{"1", "3", "6"}, ids(got))
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	items := store.Seed()
	assert.Equal(t, Filter(items, "punjab"), Filter(items, "PUNJAB"))
	assert.Equal(t, Filter(items, "punjab"), Filter(items, "  PunJab "))
}

func TestFilterFields(t *testing.T) {
	items := store.Seed()
	tests := []struct {
		term string
		want []string
	}{
		{"priya", []string{"1"}},       // name and email
		{"94994444", []string{"6"}},    // contact number
		{"yahoo", []string{"5"}},       // email
		{"haryana", []string{"4"}},     // state
		{"gurugram", []string{}},       // address is not searched
		{"gmail.com", []string{"1", "3", "4"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(items, tt.term)))
		})
	}
}

func TestFilterSkipsMissingContactNo(t *testing.T) {
	items := []contact.Contact{
		{ID: "a", Name: "No Phone", Email: "np@x.com", State: "Bihar"},
		{ID: "b", Name: "Phone", Email: "p@x.com", ContactNo: "98765", State: "Bihar"},
	}
	assert.Equal(t, []string{"b"}, ids(Filter(items, "987")))
}

func TestFilterDoesNotMutate(t *testing.T) {
	items := store.Seed()
	before := store.Seed()
	Filter(items, "punjab")
	assert.Equal(t, before, items)
}

func TestCacheMemoizes(t *testing.T) {
	s := store.New(store.WithSeed(store.Seed()))
	c := NewCache(s)

	first := c.Results("punjab")
	require.Len(t, first, 3)

	second := c.Results(" Punjab")
	assert.Same(t, &first[0], &second[0], "same term and revision must reuse the result")

	s.RemoveMany([]string{"3"})
	third := c.Results("punjab")
	assert.Equal(t, []string{"1", "6"}, ids(third))

	all := c.Results("")
	assert.Equal(t, s.Items(), all)
}
