// Package ir provides an in-memory tree for luxem documents, built by
// the parser and rendered by the encoder. The streaming layers in parse
// and encode never require it; it exists for callers that want random
// access to a whole document.
package ir

type Kind uint8

const (
	PrimitiveKind Kind = iota
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case PrimitiveKind:
		return "primitive"
	case ObjectKind:
		return "object"
	default:
		return "array"
	}
}

// Node is one value of a document. Object entries keep document order;
// duplicate keys are kept as-is. An empty type tag is distinct from an
// absent one, hence HasType.
type Node struct {
	Kind      Kind
	Type      string
	HasType   bool
	Primitive string
	Keys      []string // object entries, parallel to Values
	Values    []*Node  // object values or array elements
}

func Primitive(v string) *Node {
	return &Node{Kind: PrimitiveKind, Primitive: v}
}

func Object() *Node {
	return &Node{Kind: ObjectKind}
}

func Array(elems ...*Node) *Node {
	return &Node{Kind: ArrayKind, Values: elems}
}

// WithType attaches a type tag and returns n.
func (n *Node) WithType(t string) *Node {
	n.Type = t
	n.HasType = true
	return n
}

// Set appends an entry to an object node and returns n.
func (n *Node) Set(key string, v *Node) *Node {
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, v)
	return n
}

// Append appends an element to an array node and returns n.
func (n *Node) Append(v *Node) *Node {
	n.Values = append(n.Values, v)
	return n
}

// Get returns the value of the first entry with the given key, or nil.
func (n *Node) Get(key string) *Node {
	for i, k := range n.Keys {
		if k == key {
			return n.Values[i]
		}
	}
	return nil
}

// Len returns the number of entries or elements.
func (n *Node) Len() int {
	return len(n.Values)
}
