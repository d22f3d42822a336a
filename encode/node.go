package encode

import (
	"io"

	"github.com/luxem-format/go-luxem/ir"
)

// Node writes a whole tree through the writer.
func (w *Writer) Node(n *ir.Node) error {
	if n.HasType {
		if err := w.Type(n.Type); err != nil {
			return err
		}
	}
	switch n.Kind {
	case ir.ObjectKind:
		if err := w.ObjectBegin(); err != nil {
			return err
		}
		for i, k := range n.Keys {
			if err := w.Key(k); err != nil {
				return err
			}
			if err := w.Node(n.Values[i]); err != nil {
				return err
			}
		}
		return w.ObjectEnd()
	case ir.ArrayKind:
		if err := w.ArrayBegin(); err != nil {
			return err
		}
		for _, v := range n.Values {
			if err := w.Node(v); err != nil {
				return err
			}
		}
		return w.ArrayEnd()
	default:
		return w.Primitive(n.Primitive)
	}
}

// Encode renders the tree rooted at n to out.
func Encode(out io.Writer, n *ir.Node, opts ...Option) error {
	w := New(append([]Option{WriteTo(out)}, opts...)...)
	if err := w.Node(n); err != nil {
		return err
	}
	return w.Flush()
}

// String renders the tree rooted at n. Sink options are rejected here;
// the result always comes from the internal buffer.
func String(n *ir.Node, opts ...Option) (string, error) {
	w := New(opts...)
	if w.buf == nil {
		return "", stateErr("string encoding cannot use an external sink")
	}
	if err := w.Node(n); err != nil {
		return "", err
	}
	return w.Dump()
}
