package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Attr classifies an output fragment for decoration.
type Attr int

const (
	DelimAttr Attr = iota // { } [ ]
	SepAttr               // : and ,
	KeyAttr
	TagAttr
	ValueAttr
)

// Decorator rewrites an output fragment, typically to wrap it in
// terminal escapes. Inter-token whitespace is never decorated.
type Decorator func(a Attr, s string) string

type Colors struct {
	Default func(string, ...any) string
	Map     map[Attr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Attr]func(string, ...any) string{},
	}
	colors.Map[DelimAttr] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[SepAttr] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[KeyAttr] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[TagAttr] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[ValueAttr] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Decorator adapts c for use as a writer decorator.
func (c *Colors) Decorator() Decorator {
	return func(a Attr, s string) string {
		return c.Get(a)(s)
	}
}

func (c *Colors) Get(a Attr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
