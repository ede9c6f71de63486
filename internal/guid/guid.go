package guid

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a shape within a catalog. IDs are never reused.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Generator hands out strictly increasing IDs starting at 0. It is safe for
// concurrent use. Wraparound after 2^64 IDs is not handled.
type Generator struct {
	next atomic.Uint64
}

// New returns a generator starting at 0.
func New() *Generator {
	return &Generator{}
}

// Next returns a fresh ID.
func (g *Generator) Next() ID {
	return ID(g.next.Add(1) - 1)
}

// Peek returns the ID the next call to Next will return.
func (g *Generator) Peek() ID {
	return ID(g.next.Load())
}
