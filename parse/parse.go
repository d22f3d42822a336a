package parse

import (
	"github.com/luxem-format/go-luxem/debug"
	"github.com/luxem-format/go-luxem/token"
)

type phase uint8

const (
	phaseValue phase = iota // expecting a type tag or a value
	phaseKey                // inside an object, expecting a key or '}'
	phaseColon              // after a key, expecting ':'
	phaseNext               // after a value, expecting ',' or a closer
	phaseDone               // the root value is complete
)

type frame uint8

const (
	frameObject frame = iota
	frameArray
)

type tokKind uint8

const (
	tokNone tokKind = iota
	tokWord
	tokQuoted
	tokType
)

// Parser incrementally decodes one luxem document, pushing events to
// its listener as bytes arrive. A parser is single use: it decodes
// exactly one document and is terminal after any error. It performs no
// locking; concurrent use of one instance requires external
// serialization.
type Parser struct {
	lis   Listener
	stack []frame
	phase phase
	typed bool // a type tag is attached to the value being awaited

	// Pending token accumulation, spanning Feed boundaries.
	tk  tokKind
	tok []byte
	esc bool

	pos       int64 // cumulative bytes consumed
	rootComma bool  // the optional trailing comma after the root value
	err       error // terminal state
}

// New returns a Parser delivering events to lis.
func New(lis Listener) *Parser {
	return &Parser{lis: lis, phase: phaseValue}
}

// Position returns the cumulative number of bytes consumed since
// construction. It is monotonic and never exceeds the total length of
// input supplied.
func (p *Parser) Position() int64 {
	return p.pos
}

// Feed consumes chunk, emitting events for every token and structure
// that becomes fully determined. consumed is always <= len(chunk); on
// success it equals len(chunk), with any dangling partial token
// retained internally for a later Feed on the same instance. When
// finish is true the input so far must complete a balanced document.
//
// A grammar violation yields a *SyntaxError and a listener failure is
// returned unmodified; either way the parser is terminal afterwards.
func (p *Parser) Feed(chunk []byte, finish bool) (consumed int, err error) {
	if p.err != nil {
		return 0, p.err
	}
	start := p.pos
	n := int64(len(chunk))
	for p.pos-start < n {
		c := chunk[p.pos-start]
		var err error
		switch {
		case p.tk != tokNone:
			err = p.scanToken(c)
		case token.IsSpace(c):
			p.pos++
		default:
			err = p.step(c)
		}
		if err != nil {
			return int(p.pos - start), p.fail(err)
		}
	}
	if finish {
		if err := p.finish(); err != nil {
			return int(p.pos - start), p.fail(err)
		}
	}
	return int(p.pos - start), nil
}

// scanToken advances token accumulation by one byte. A terminator of a
// bare word is left unconsumed for structural reprocessing.
func (p *Parser) scanToken(c byte) error {
	if p.esc {
		p.tok = append(p.tok, c)
		p.esc = false
		p.pos++
		return nil
	}
	switch p.tk {
	case tokQuoted:
		switch c {
		case token.Escape:
			p.esc = true
			p.pos++
		case token.Quote:
			p.pos++
			return p.emitText()
		default:
			p.tok = append(p.tok, c)
			p.pos++
		}
	case tokType:
		switch c {
		case token.Escape:
			p.esc = true
			p.pos++
		case token.TypeClose:
			p.pos++
			return p.emitType()
		default:
			p.tok = append(p.tok, c)
			p.pos++
		}
	default: // tokWord
		switch {
		case c == token.Escape:
			p.esc = true
			p.pos++
		case token.IsTerminator(c):
			return p.emitText()
		default:
			p.tok = append(p.tok, c)
			p.pos++
		}
	}
	return nil
}

// step handles one structural byte outside token accumulation.
func (p *Parser) step(c byte) error {
	switch p.phase {
	case phaseValue:
		switch c {
		case token.ObjectOpen:
			p.pos++
			if err := p.event("object_begin", p.lis.ObjectBegin); err != nil {
				return err
			}
			p.stack = append(p.stack, frameObject)
			p.phase = phaseKey
			p.typed = false
			return nil
		case token.ArrayOpen:
			p.pos++
			if err := p.event("array_begin", p.lis.ArrayBegin); err != nil {
				return err
			}
			p.stack = append(p.stack, frameArray)
			p.phase = phaseValue
			p.typed = false
			return nil
		case token.TypeOpen:
			if p.typed {
				return syntaxErr(p.pos, "multiple type tags for one value")
			}
			p.tk = tokType
			p.pos++
			return nil
		case token.Quote:
			p.tk = tokQuoted
			p.pos++
			return nil
		case token.ArrayClose:
			// Empty array, or a trailing comma inside one.
			if p.typed {
				return syntaxErr(p.pos, "expected value after type tag")
			}
			if !p.inFrame(frameArray) {
				return syntaxErr(p.pos, "unexpected ']'")
			}
			p.pos++
			return p.closeFrame("array_end", p.lis.ArrayEnd)
		case token.ObjectClose, token.EntrySep, token.KeySep, token.TypeClose:
			return syntaxErr(p.pos, "expected value, got %q", string(c))
		default:
			p.startWord(c)
			return nil
		}

	case phaseKey:
		switch c {
		case token.ObjectClose:
			p.pos++
			return p.closeFrame("object_end", p.lis.ObjectEnd)
		case token.Quote:
			p.tk = tokQuoted
			p.pos++
			return nil
		case token.ObjectOpen, token.ArrayOpen, token.ArrayClose,
			token.TypeOpen, token.TypeClose, token.KeySep, token.EntrySep:
			return syntaxErr(p.pos, "expected key, got %q", string(c))
		default:
			p.startWord(c)
			return nil
		}

	case phaseColon:
		if c != token.KeySep {
			return syntaxErr(p.pos, "expected ':' after key, got %q", string(c))
		}
		p.phase = phaseValue
		p.pos++
		return nil

	case phaseNext:
		switch c {
		case token.EntrySep:
			if p.top() == frameObject {
				p.phase = phaseKey
			} else {
				p.phase = phaseValue
			}
			p.pos++
			return nil
		case token.ObjectClose:
			if p.top() != frameObject {
				return syntaxErr(p.pos, "unexpected '}'")
			}
			p.pos++
			return p.closeFrame("object_end", p.lis.ObjectEnd)
		case token.ArrayClose:
			if p.top() != frameArray {
				return syntaxErr(p.pos, "unexpected ']'")
			}
			p.pos++
			return p.closeFrame("array_end", p.lis.ArrayEnd)
		default:
			if p.top() == frameObject {
				return syntaxErr(p.pos, "expected ',' or '}', got %q", string(c))
			}
			return syntaxErr(p.pos, "expected ',' or ']', got %q", string(c))
		}

	default: // phaseDone
		if c == token.EntrySep && !p.rootComma {
			p.rootComma = true
			p.pos++
			return nil
		}
		return syntaxErr(p.pos, "expected end of document, got %q", string(c))
	}
}

// startWord begins bare word accumulation. An escape may open the word;
// it applies to the next byte exactly as it does mid-token.
func (p *Parser) startWord(c byte) {
	p.tk = tokWord
	if c == token.Escape {
		p.esc = true
	} else {
		p.tok = append(p.tok, c)
	}
	p.pos++
}

// emitText delivers the accumulated word or quoted token as a key or a
// primitive according to the current phase.
func (p *Parser) emitText() error {
	v := string(p.tok)
	p.tok = p.tok[:0]
	p.tk = tokNone
	if p.phase == phaseKey {
		if err := p.event("key %q", func() error { return p.lis.Key(v) }, v); err != nil {
			return err
		}
		p.phase = phaseColon
		return nil
	}
	if err := p.event("primitive %q", func() error { return p.lis.Primitive(v) }, v); err != nil {
		return err
	}
	p.typed = false
	p.afterValue()
	return nil
}

// emitType delivers the accumulated type tag.
func (p *Parser) emitType() error {
	v := string(p.tok)
	p.tok = p.tok[:0]
	p.tk = tokNone
	if err := p.event("type %q", func() error { return p.lis.Type(v) }, v); err != nil {
		return err
	}
	p.typed = true
	return nil
}

func (p *Parser) closeFrame(name string, fn func() error) error {
	if err := p.event(name, fn); err != nil {
		return err
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.afterValue()
	return nil
}

func (p *Parser) afterValue() {
	if len(p.stack) == 0 {
		p.phase = phaseDone
	} else {
		p.phase = phaseNext
	}
}

func (p *Parser) top() frame {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) inFrame(f frame) bool {
	return len(p.stack) > 0 && p.top() == f
}

func (p *Parser) event(name string, fn func() error, args ...any) error {
	if debug.Parse() {
		debug.Logf("parse: "+name+" [offset %d]\n", append(args, p.pos)...)
	}
	return fn()
}

// finish validates the end of input.
func (p *Parser) finish() error {
	if p.esc {
		return syntaxErr(p.pos, "dangling escape")
	}
	switch p.tk {
	case tokQuoted:
		return syntaxErr(p.pos, "unterminated quoted string")
	case tokType:
		return syntaxErr(p.pos, "unterminated type tag")
	case tokWord:
		// End of input terminates a bare word.
		if err := p.emitText(); err != nil {
			return err
		}
	}
	switch p.phase {
	case phaseDone:
		return nil
	case phaseColon:
		return syntaxErr(p.pos, "expected ':' after key")
	case phaseKey:
		return syntaxErr(p.pos, "unclosed object")
	case phaseNext:
		if p.top() == frameObject {
			return syntaxErr(p.pos, "unclosed object")
		}
		return syntaxErr(p.pos, "unclosed array")
	default:
		if p.typed {
			return syntaxErr(p.pos, "expected value after type tag")
		}
		if len(p.stack) > 0 {
			if p.top() == frameObject {
				return syntaxErr(p.pos, "unclosed object")
			}
			return syntaxErr(p.pos, "unclosed array")
		}
		return syntaxErr(p.pos, "expected value")
	}
}

// fail records err and leaves the parser terminal.
func (p *Parser) fail(err error) error {
	p.err = err
	return err
}
