package parse

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel wrapped by every SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is an engine-detected grammar violation. Pos is the
// cumulative byte offset since parser construction at which the
// violation was detected.
type SyntaxError struct {
	Msg string
	Pos int64
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s [offset %d]", e.Msg, e.Pos)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// IsSyntax reports whether err is an engine-detected grammar violation.
// Any other non-nil error returned by Feed or FeedReader originated in
// the listener (or the reader) and is passed through unmodified.
func IsSyntax(err error) bool {
	return errors.Is(err, ErrSyntax)
}

func syntaxErr(pos int64, format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}
