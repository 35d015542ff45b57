package forest

import "github.com/pkg/errors"

// ErrAlreadyConnected is returned by Link when its two arguments already
// sit in the same Euler-tour tree at this level. Built with pkg/errors
// rather than the stdlib errors package so that a panic wrapping it (see
// replace.go) carries a stack trace back to the push-down step that
// tripped the invariant -- the only place in this module where a bug
// would otherwise surface as a bare "invariant violated" with no way to
// tell which of the half-dozen call sites produced it.
var ErrAlreadyConnected = errors.New("forest: vertices already connected at this level")

// ErrNotTreeEdge is returned by Cut when given a GraphEdge that is not
// currently classified as a tree edge.
var ErrNotTreeEdge = errors.New("forest: edge is not a tree edge")
