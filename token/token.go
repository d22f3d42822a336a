// Package token provides the lexical layer of the luxem format: byte
// classification shared by the parser, and quoting/escaping helpers
// shared by the writer.
package token

// Structural bytes of the format. Any of these terminates a bare word.
const (
	ObjectOpen  = '{'
	ObjectClose = '}'
	ArrayOpen   = '['
	ArrayClose  = ']'
	TypeOpen    = '('
	TypeClose   = ')'
	KeySep      = ':'
	EntrySep    = ','
	Quote       = '"'
	Escape      = '\\'
)

// IsSpace reports whether c is insignificant whitespace between tokens.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// IsTerminator reports whether c ends a bare word. Words run until
// whitespace or a structural byte; anything else, including arbitrary
// UTF-8, passes through opaquely.
func IsTerminator(c byte) bool {
	if IsSpace(c) {
		return true
	}
	switch c {
	case ObjectOpen, ObjectClose, ArrayOpen, ArrayClose,
		TypeOpen, TypeClose, KeySep, EntrySep, Quote:
		return true
	}
	return false
}

// NeedsQuote reports whether v cannot be written as a bare word.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i := 0; i < len(v); i++ {
		if IsTerminator(v[i]) || v[i] == Escape {
			return true
		}
	}
	return false
}

// AppendQuoted appends v to d as a quoted primitive or key, escaping
// the quote and escape bytes. All other bytes are carried verbatim.
func AppendQuoted(d []byte, v string) []byte {
	d = append(d, Quote)
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == Quote || c == Escape {
			d = append(d, Escape)
		}
		d = append(d, c)
	}
	return append(d, Quote)
}

// QuoteString returns v as a quoted token.
func QuoteString(v string) string {
	return string(AppendQuoted(make([]byte, 0, len(v)+2), v))
}

// AppendTypeTag appends v to d as a type tag, parenthesized, escaping
// the closing paren and escape bytes.
func AppendTypeTag(d []byte, v string) []byte {
	d = append(d, TypeOpen)
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == TypeClose || c == Escape {
			d = append(d, Escape)
		}
		d = append(d, c)
	}
	return append(d, TypeClose)
}
