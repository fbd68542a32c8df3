// ABOUTME: Record identifier generation with a secure source and PRNG fallback.
// ABOUTME: Both random sources are injectable so each path can be exercised.
package ids

import (
	crand "crypto/rand"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator produces UUID v4 strings. It reads from the secure source first
// and falls back to a seeded PRNG when that read fails. NewID never fails.
type Generator struct {
	mu       sync.Mutex
	secure   io.Reader
	fallback io.Reader
}

// New returns a generator backed by crypto/rand with a time-seeded fallback.
func New() *Generator {
	return NewWithSources(crand.Reader, nil)
}

// NewWithSources returns a generator reading from the given sources.
// A nil fallback is replaced with a time-seeded PRNG.
func NewWithSources(secure, fallback io.Reader) *Generator {
	if fallback == nil {
		fallback = newPRNG()
	}
	return &Generator{secure: secure, fallback: fallback}
}

// NewID returns a new unique identifier. Reads from either source are
// serialized, so injected readers need not be safe for concurrent use.
func (g *Generator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.secure != nil {
		if id, err := uuid.NewRandomFromReader(g.secure); err == nil {
			return id.String()
		}
	}

	id, err := uuid.NewRandomFromReader(g.fallback)
	if err != nil {
		g.fallback = newPRNG()
		id, _ = uuid.NewRandomFromReader(g.fallback)
	}
	return id.String()
}

// math/rand sources never return read errors.
func newPRNG() io.Reader {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
