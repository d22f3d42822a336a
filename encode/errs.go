package encode

import (
	"errors"
	"fmt"
)

// ErrEncoding is the sentinel wrapped by every StateError.
var ErrEncoding = errors.New("encoding error")

// StateError reports an event sequence the format cannot express, such
// as a value without a key inside an object. Sink and callback failures
// are never wrapped in a StateError; they pass through unmodified.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string {
	return e.Msg
}

func (e *StateError) Unwrap() error {
	return ErrEncoding
}

func stateErr(format string, args ...any) *StateError {
	return &StateError{Msg: fmt.Sprintf(format, args...)}
}
