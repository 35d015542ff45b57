package registry

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/wengh/dynamic-connectivity/internal/rbtree"
)

// Component is one snapshot row handed back by Cache.Representative: a
// stable external identifier plus the vertex currently standing in for
// the whole component.
type Component[V comparable] struct {
	ID             uuid.UUID
	Representative V
}

type entry[V comparable] struct {
	id             uuid.UUID
	representative V
}

// Cache is an LRU-bounded root-to-representative map, generic over the
// caller's vertex-handle type so it can live outside the façade package
// without importing it back (the façade imports registry, not the other
// way around).
type Cache[V comparable] struct {
	inner *lru.Cache
}

// New allocates a Cache holding at most size distinct components'
// worth of bookkeeping; the least-recently-queried component is evicted
// first once full. size <= 0 is treated as 1, matching golang-lru's own
// validation (it otherwise errors on a non-positive size).
func New[V comparable](size int) *Cache[V] {
	if size <= 0 {
		size = 1
	}
	inner, err := lru.New(size)
	if err != nil {
		panic("registry: golang-lru.New rejected a positive size: " + err.Error())
	}
	return &Cache[V]{inner: inner}
}

// Representative returns a stable (ID, representative vertex) pair for
// the component whose Euler-tour root is currently root. members must
// list every vertex the caller has already determined belongs to that
// component (in practice, every vertex sharing this root in the current
// scan).
//
// If this root was seen before and its cached representative is still
// among members, the same (ID, representative) pair is returned.
// Otherwise a fresh ID is minted and members[0] becomes the new
// representative. The lookup is keyed by the root node itself: a
// component whose root node differs from the one seen last time (as
// after a merge or split) gets a fresh ID, even if its members are
// unchanged.
func (c *Cache[V]) Representative(root *rbtree.Node, members []V) Component[V] {
	if raw, ok := c.inner.Get(root); ok {
		e := raw.(entry[V])
		for _, m := range members {
			if m == e.representative {
				return Component[V]{ID: e.id, Representative: e.representative}
			}
		}
	}
	e := entry[V]{id: uuid.New(), representative: members[0]}
	c.inner.Add(root, e)
	return Component[V]{ID: e.id, Representative: e.representative}
}

// Len reports how many distinct component roots the cache currently
// remembers (bounded by the size passed to New).
func (c *Cache[V]) Len() int {
	return c.inner.Len()
}

// Purge discards every cached root-to-representative mapping, forcing
// fresh IDs on the next Representative call for every component. Used by
// Graph.Clear.
func (c *Cache[V]) Purge() {
	c.inner.Purge()
}
