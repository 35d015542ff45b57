//go:build dynconn_debug

package dynconn

import "github.com/wengh/dynamic-connectivity/internal/forest"

// debugValidate re-checks every layered-forest invariant after each
// mutation. It is compiled in only under the dynconn_debug build tag
// (go test -tags dynconn_debug ./...) since a full Validate pass walks
// every level of every component and is far too slow to leave on by
// default.
func (g *Graph) debugValidate() {
	if err := forest.Validate(g.topETVs()); err != nil {
		panic(err)
	}
}
