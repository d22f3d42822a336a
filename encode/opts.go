package encode

import (
	"bufio"
	"io"
)

type Option func(*Writer)

// WithSink directs output to s. Dump is unavailable for writers with an
// external sink.
func WithSink(s Sink) Option {
	return func(w *Writer) { w.sink = s }
}

// WriteTo directs output to out through an internal buffer; call Flush
// when the document is complete.
func WriteTo(out io.Writer) Option {
	return func(w *Writer) {
		w.bw = bufio.NewWriter(out)
		w.sink = &streamSink{bw: w.bw}
	}
}

// WithCallback invokes fn for every output fragment in document order.
// An error from fn aborts the writer and is returned unmodified.
func WithCallback(fn func(p []byte) error) Option {
	return func(w *Writer) { w.sink = callbackSink(fn) }
}

// Pretty turns on multi-line output with indentation.
func Pretty(v bool) Option {
	return func(w *Writer) { w.pretty = v }
}

// UseSpaces indents with spaces instead of tabs.
func UseSpaces(v bool) Option {
	return func(w *Writer) { w.spaces = v }
}

// IndentMultiple sets the number of indent characters per nesting
// level. Zero is legal and keeps pretty output on one line per entry
// with no indentation. The default is one.
func IndentMultiple(n int) Option {
	return func(w *Writer) {
		if n >= 0 {
			w.mult = n
		}
	}
}

func WithDecorator(d Decorator) Option {
	return func(w *Writer) { w.dec = d }
}

func WithColors(c *Colors) Option {
	return WithDecorator(c.Decorator())
}
