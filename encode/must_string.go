package encode

import "github.com/luxem-format/go-luxem/ir"

// MustString renders the tree rooted at n, panicking on error. Trees
// built by the ir package always encode cleanly.
func MustString(n *ir.Node, opts ...Option) string {
	s, err := String(n, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
