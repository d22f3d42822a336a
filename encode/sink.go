package encode

import (
	"bufio"
	"bytes"
)

// Sink receives encoded fragments in document order. A non-nil error
// aborts the writer and is handed back to the caller unmodified.
type Sink interface {
	Write(p []byte) error
}

type bufferSink struct {
	buf bytes.Buffer
}

func (s *bufferSink) Write(p []byte) error {
	s.buf.Write(p)
	return nil
}

type streamSink struct {
	bw *bufio.Writer
}

func (s *streamSink) Write(p []byte) error {
	_, err := s.bw.Write(p)
	return err
}

type callbackSink func(p []byte) error

func (s callbackSink) Write(p []byte) error {
	return s(p)
}
