package ir

import (
	"io"

	"github.com/luxem-format/go-luxem/parse"
)

// Builder accumulates parse events into a Node tree. It implements the
// parser's listener interface and never fails on its own; the parser
// guarantees a well-formed event sequence.
type Builder struct {
	root    *Node
	stack   []*Node
	key     string
	hasKey  bool
	typ     string
	hasType bool
}

var _ parse.Listener = (*Builder)(nil)

// Root returns the completed tree, or nil before any value arrived.
func (b *Builder) Root() *Node {
	return b.root
}

func (b *Builder) ObjectBegin() error {
	b.push(Object())
	return nil
}

func (b *Builder) ObjectEnd() error {
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *Builder) ArrayBegin() error {
	b.push(Array())
	return nil
}

func (b *Builder) ArrayEnd() error {
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *Builder) Key(v string) error {
	b.key = v
	b.hasKey = true
	return nil
}

func (b *Builder) Type(v string) error {
	b.typ = v
	b.hasType = true
	return nil
}

func (b *Builder) Primitive(v string) error {
	b.attach(Primitive(v))
	return nil
}

func (b *Builder) push(n *Node) {
	b.attach(n)
	b.stack = append(b.stack, n)
}

func (b *Builder) attach(n *Node) {
	if b.hasType {
		n.WithType(b.typ)
		b.typ, b.hasType = "", false
	}
	if len(b.stack) == 0 {
		b.root = n
		return
	}
	top := b.stack[len(b.stack)-1]
	if b.hasKey {
		top.Set(b.key, n)
		b.key, b.hasKey = "", false
		return
	}
	top.Append(n)
}

// Parse decodes one whole document into a tree.
func Parse(data []byte) (*Node, error) {
	b := &Builder{}
	if _, err := parse.New(b).Feed(data, true); err != nil {
		return nil, err
	}
	return b.Root(), nil
}

// ParseReader decodes one whole document from r into a tree.
func ParseReader(r io.Reader) (*Node, error) {
	b := &Builder{}
	if err := parse.New(b).FeedReader(r, nil, nil); err != nil {
		return nil, err
	}
	return b.Root(), nil
}
