package task

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator hands out task identifiers.
type IDGenerator interface {
	NewID() ID
}

// UUIDGenerator produces time-ordered UUIDv7 identifiers.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		return ID(uuid.NewString())
	}
	return ID(id.String())
}

// Counter produces Prefix+1, Prefix+2, ... and never repeats a value.
// The zero value is ready to use.
type Counter struct {
	Prefix string
	next   uint64
}

// NewCounter returns a counter whose first ID is prefix+"1".
func NewCounter(prefix string) *Counter {
	return &Counter{Prefix: prefix}
}

func (c *Counter) NewID() ID {
	c.next++
	return ID(c.Prefix + strconv.FormatUint(c.next, 10))
}

// Observe moves the counter past id when id is one of its own values, so
// seeded IDs are never handed out again.
func (c *Counter) Observe(id ID) {
	digits, ok := strings.CutPrefix(string(id), c.Prefix)
	if !ok {
		return
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return
	}
	c.next = max(c.next, n)
}
