package dynconn

import "math/rand/v2"

// Vertex is an opaque external vertex handle (spec.md §4.4): its
// identity IS its pointer value (Go's own "==" on *Vertex gives the
// identity equality spec.md requires), and it carries nothing but a
// uniformly-random 32-bit fingerprint. The same handle may be passed to
// many independent Graphs at once -- it never references back into any
// of them, so a Graph going out of scope never leaks through a Vertex a
// caller is still holding.
type Vertex struct {
	fingerprint uint32
}

// NewVertex allocates a fresh handle. Its fingerprint is drawn from the
// process-wide generator unless an explicit rng is supplied, in which
// case fingerprints become reproducible -- spec.md §9 calls this out
// explicitly for testability ("expose a constructor accepting an
// explicit RNG"). Only the first rng argument is consulted; it exists as
// a variadic purely so callers can omit it.
func NewVertex(rng ...*rand.Rand) *Vertex {
	if len(rng) > 0 && rng[0] != nil {
		return newVertex(rng[0])
	}
	return newVertex(nil)
}

// NewVertex allocates a fresh handle the same way the package-level
// NewVertex does, defaulting to the generator g was constructed with
// (WithRNG) instead of the process-wide one -- the one place g.rng is
// actually consulted.
func (g *Graph) NewVertex() *Vertex {
	return newVertex(g.rng)
}

func newVertex(rng *rand.Rand) *Vertex {
	if rng != nil {
		return &Vertex{fingerprint: rng.Uint32()}
	}
	return &Vertex{fingerprint: rand.Uint32()}
}

// Fingerprint returns the handle's random tag (spec.md §4.4, §9). Go's
// built-in map already hashes pointer identity well, so nothing in this
// package keys off Fingerprint internally; it is exposed for callers
// building their own bucketed containers on top, and for reproducible
// debug output when a Vertex was minted with an explicit rng.
func (v *Vertex) Fingerprint() uint32 {
	return v.fingerprint
}
