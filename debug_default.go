//go:build !dynconn_debug

package dynconn

// debugValidate is a no-op in normal builds; see debug_dynconn_debug.go.
func (g *Graph) debugValidate() {}
