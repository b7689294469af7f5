package store

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces a fresh contact ID on every call.
type IDGenerator func() string

// UUIDGenerator returns random version 4 UUIDs.
func UUIDGenerator() string {
	return uuid.NewString()
}

// NewCounterGenerator returns a generator yielding start, start+1, ... as decimal strings.
func NewCounterGenerator(start int) IDGenerator {
	next := start
	return func() string {
		id := strconv.Itoa(next)
		next++
		return id
	}
}
