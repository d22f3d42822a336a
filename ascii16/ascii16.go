// Package ascii16 transcodes arbitrary bytes to and from lowercase
// hexadecimal, for embedding binary content inside a primitive token.
package ascii16

import (
	"errors"
	"fmt"
)

// ErrDecode is the sentinel wrapped by every DecodeError.
var ErrDecode = errors.New("ascii16 decode error")

// DecodeError reports the first offending offset of a malformed input.
// Odd-length input reports the offset of the missing final digit.
type DecodeError struct {
	Msg    string
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s [offset %d]", e.Msg, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

const digits = "0123456789abcdef"

// Encode maps every input byte to two lowercase hex digits. It is
// total; Decode inverts it exactly.
func Encode(data []byte) string {
	out := make([]byte, 0, len(data)*2)
	for _, b := range data {
		out = append(out, digits[b>>4], digits[b&0xf])
	}
	return string(out)
}

// Decode inverts Encode. Uppercase digits are accepted.
func Decode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &DecodeError{Msg: "odd length", Offset: len(s)}
	}
	out := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := digit(s[i])
		if !ok {
			return nil, &DecodeError{Msg: fmt.Sprintf("invalid character %q", string(s[i])), Offset: i}
		}
		lo, ok := digit(s[i+1])
		if !ok {
			return nil, &DecodeError{Msg: fmt.Sprintf("invalid character %q", string(s[i+1])), Offset: i + 1}
		}
		out = append(out, hi<<4|lo)
	}
	return out, nil
}

func digit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
