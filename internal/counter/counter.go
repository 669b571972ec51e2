// Package counter provides the mutable element used by the satchel demo: a
// counter whose internal state can change freely even while the sequence
// holding it is protected.
package counter

import (
	"strconv"

	"github.com/google/uuid"
)

// Counter is a mutable tally with a stable identity. The identity survives
// any number of state mutations, so two handles can be recognized as the
// same element regardless of which sequence copy they came from.
type Counter struct {
	id    uuid.UUID
	count int
}

// New returns a counter starting at value, with a fresh identity.
func New(value int) *Counter {
	return &Counter{id: uuid.New(), count: value}
}

// ID returns the counter's identity.
func (c *Counter) ID() uuid.UUID {
	return c.id
}

// Value returns the current tally.
func (c *Counter) Value() int {
	return c.count
}

// Add increases the tally by n.
func (c *Counter) Add(n int) {
	c.count += n
}

// Double doubles the tally.
func (c *Counter) Double() {
	c.count *= 2
}

// String renders the current tally.
func (c *Counter) String() string {
	return strconv.Itoa(c.count)
}
