package board

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Identifier prefixes for generated ids.
const (
	PrefixColumn = "col-"
	PrefixTask   = "task-"
)

// IDGenerator produces unique identifiers for new columns and tasks.
type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDGenerator generates random UUIDv4-suffixed ids.
type UUIDGenerator struct{}

// NewID returns prefix followed by a random UUID.
func (UUIDGenerator) NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// SequenceGenerator generates monotonically increasing ids. It is safe for
// concurrent use and deterministic, which makes it the generator of choice
// in tests.
type SequenceGenerator struct {
	next atomic.Int64
}

// NewID returns prefix followed by the next sequence number, starting at 1.
func (g *SequenceGenerator) NewID(prefix string) string {
	return prefix + strconv.FormatInt(g.next.Add(1), 10)
}
