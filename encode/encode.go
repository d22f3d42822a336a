package encode

import (
	"bufio"
	"strings"

	"github.com/luxem-format/go-luxem/debug"
	"github.com/luxem-format/go-luxem/token"
)

type frame struct {
	kind byte // token.ObjectOpen or token.ArrayOpen
	n    int  // entries written so far
}

// Writer incrementally renders one luxem document from the same event
// vocabulary the parser emits. Events arriving in an order the format
// cannot express yield a *StateError; a sink or callback failure is
// returned unmodified. Either way the writer is terminal afterwards.
type Writer struct {
	sink   Sink
	buf    *bufferSink
	bw     *bufio.Writer
	pretty bool
	spaces bool
	mult   int
	dec    Decorator

	stack    []frame
	afterKey bool
	typed    bool
	rootDone bool
	err      error
}

// New returns a Writer. Without a sink option the output accumulates in
// an internal buffer retrieved with Dump.
func New(opts ...Option) *Writer {
	w := &Writer{mult: 1}
	for _, opt := range opts {
		opt(w)
	}
	if w.sink == nil {
		w.buf = &bufferSink{}
		w.sink = w.buf
	}
	return w
}

// Dump returns everything written so far. It fails for writers
// constructed with an external sink.
func (w *Writer) Dump() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	if w.buf == nil {
		return "", stateErr("dump from a writer without an internal buffer")
	}
	return w.buf.buf.String(), nil
}

// Flush drains internal buffering to the underlying output. It is a
// no-op for buffer and callback sinks.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.bw == nil {
		return nil
	}
	if err := w.bw.Flush(); err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *Writer) ObjectBegin() error {
	if w.err != nil {
		return w.err
	}
	w.trace("object_begin")
	if err := w.beginValue(); err != nil {
		return err
	}
	if err := w.write(DelimAttr, "{"); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{kind: token.ObjectOpen})
	return nil
}

func (w *Writer) ObjectEnd() error {
	if w.err != nil {
		return w.err
	}
	w.trace("object_end")
	return w.close(token.ObjectOpen, "}")
}

func (w *Writer) ArrayBegin() error {
	if w.err != nil {
		return w.err
	}
	w.trace("array_begin")
	if err := w.beginValue(); err != nil {
		return err
	}
	if err := w.write(DelimAttr, "["); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{kind: token.ArrayOpen})
	return nil
}

func (w *Writer) ArrayEnd() error {
	if w.err != nil {
		return w.err
	}
	w.trace("array_end")
	return w.close(token.ArrayOpen, "]")
}

// Key writes an object key, quoting it when it cannot stand as a bare
// word.
func (w *Writer) Key(v string) error {
	if w.err != nil {
		return w.err
	}
	w.trace("key %q", v)
	if len(w.stack) == 0 || w.top().kind != token.ObjectOpen {
		return w.fail(stateErr("key %q outside an object", v))
	}
	if w.afterKey {
		return w.fail(stateErr("key %q follows an unvalued key", v))
	}
	if w.typed {
		return w.fail(stateErr("key %q follows a dangling type tag", v))
	}
	if err := w.sep(); err != nil {
		return err
	}
	s := v
	if token.NeedsQuote(v) {
		s = token.QuoteString(v)
	}
	if err := w.write(KeyAttr, s); err != nil {
		return err
	}
	if err := w.write(SepAttr, ":"); err != nil {
		return err
	}
	if w.pretty {
		if err := w.writePlain(" "); err != nil {
			return err
		}
	}
	w.afterKey = true
	return nil
}

// Type writes a type tag for the value that must follow.
func (w *Writer) Type(v string) error {
	if w.err != nil {
		return w.err
	}
	w.trace("type %q", v)
	if w.typed {
		return w.fail(stateErr("second type tag for one value"))
	}
	if !w.afterKey {
		switch {
		case len(w.stack) == 0:
			if w.rootDone {
				return w.fail(stateErr("root value already written"))
			}
		case w.top().kind == token.ObjectOpen:
			return w.fail(stateErr("type tag requires a key inside an object"))
		default:
			if err := w.sep(); err != nil {
				return err
			}
		}
	}
	if err := w.write(TagAttr, string(token.AppendTypeTag(nil, v))); err != nil {
		return err
	}
	if w.pretty {
		if err := w.writePlain(" "); err != nil {
			return err
		}
	}
	w.afterKey = false
	w.typed = true
	return nil
}

// Primitive writes a scalar, quoting it when it cannot stand as a bare
// word.
func (w *Writer) Primitive(v string) error {
	if w.err != nil {
		return w.err
	}
	w.trace("primitive %q", v)
	if err := w.beginValue(); err != nil {
		return err
	}
	s := v
	if token.NeedsQuote(v) {
		s = token.QuoteString(v)
	}
	if err := w.write(ValueAttr, s); err != nil {
		return err
	}
	w.endValue()
	return nil
}

// beginValue positions the writer for a value: after a key or type tag
// it attaches in place, in an array it starts a new entry, at the root
// it must be the only value.
func (w *Writer) beginValue() error {
	if w.afterKey || w.typed {
		w.afterKey, w.typed = false, false
		return nil
	}
	switch {
	case len(w.stack) == 0:
		if w.rootDone {
			return w.fail(stateErr("root value already written"))
		}
		return nil
	case w.top().kind == token.ObjectOpen:
		return w.fail(stateErr("value requires a key inside an object"))
	default:
		return w.sep()
	}
}

func (w *Writer) endValue() {
	if len(w.stack) == 0 {
		w.rootDone = true
	}
}

// sep starts a new entry in the enclosing container: a comma after an
// earlier sibling, and in pretty mode a fresh indented line.
func (w *Writer) sep() error {
	f := &w.stack[len(w.stack)-1]
	if f.n > 0 {
		if err := w.write(SepAttr, ","); err != nil {
			return err
		}
	}
	f.n++
	if w.pretty {
		return w.writePlain("\n" + w.indent(len(w.stack)))
	}
	return nil
}

func (w *Writer) close(kind byte, closer string) error {
	if len(w.stack) == 0 || w.top().kind != kind {
		return w.fail(stateErr("mismatched %q", closer))
	}
	if w.afterKey {
		return w.fail(stateErr("%q after an unvalued key", closer))
	}
	if w.typed {
		return w.fail(stateErr("%q after a dangling type tag", closer))
	}
	f := w.top()
	w.stack = w.stack[:len(w.stack)-1]
	if w.pretty && f.n > 0 {
		if err := w.writePlain("\n" + w.indent(len(w.stack))); err != nil {
			return err
		}
	}
	if err := w.write(DelimAttr, closer); err != nil {
		return err
	}
	w.endValue()
	return nil
}

func (w *Writer) indent(depth int) string {
	c := "\t"
	if w.spaces {
		c = " "
	}
	return strings.Repeat(c, depth*w.mult)
}

func (w *Writer) top() frame {
	return w.stack[len(w.stack)-1]
}

func (w *Writer) write(a Attr, s string) error {
	if w.dec != nil {
		s = w.dec(a, s)
	}
	return w.writePlain(s)
}

func (w *Writer) writePlain(s string) error {
	if err := w.sink.Write([]byte(s)); err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *Writer) trace(msg string, args ...any) {
	if debug.Encode() {
		debug.Logf("encode: "+msg+"\n", args...)
	}
}

// fail records err and leaves the writer terminal.
func (w *Writer) fail(err error) error {
	w.err = err
	return err
}
