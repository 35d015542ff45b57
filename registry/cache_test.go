package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wengh/dynamic-connectivity/internal/rbtree"
	"github.com/wengh/dynamic-connectivity/registry"
)

func TestRepresentativeStableAcrossCalls(t *testing.T) {
	c := registry.New[string](8)
	root := rbtree.New(nil)

	first := c.Representative(root, []string{"b", "a", "c"})
	second := c.Representative(root, []string{"a", "b", "c"})

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Representative, second.Representative)
}

func TestRepresentativeReassignedWhenStale(t *testing.T) {
	c := registry.New[string](8)
	root := rbtree.New(nil)

	first := c.Representative(root, []string{"a", "b"})
	// "a" left the component; only "b" remains reachable from root.
	second := c.Representative(root, []string{"b"})

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "b", second.Representative)
}

func TestRepresentativeDistinctRootsDistinctIDs(t *testing.T) {
	c := registry.New[string](8)
	r1, r2 := rbtree.New(nil), rbtree.New(nil)

	a := c.Representative(r1, []string{"x"})
	b := c.Representative(r2, []string{"y"})

	assert.NotEqual(t, a.ID, b.ID)
}

func TestCacheEvictsUnderSize(t *testing.T) {
	c := registry.New[string](1)
	r1, r2 := rbtree.New(nil), rbtree.New(nil)

	c.Representative(r1, []string{"x"})
	c.Representative(r2, []string{"y"})

	assert.Equal(t, 1, c.Len())
}

func TestPurgeForcesFreshIDs(t *testing.T) {
	c := registry.New[string](8)
	root := rbtree.New(nil)

	first := c.Representative(root, []string{"a"})
	c.Purge()
	second := c.Representative(root, []string{"a"})

	assert.NotEqual(t, first.ID, second.ID)
}
