package ascii16

import (
	"bytes"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	for _, in := range [][]byte{nil, {0}, {0xff}, []byte("hello"), all} {
		enc := Encode(in)
		if len(enc) != 2*len(in) {
			t.Fatalf("Encode(%x) has length %d", in, len(enc))
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q): %v", enc, err)
		}
		if !bytes.Equal(dec, in) {
			t.Errorf("round trip of %x gave %x", in, dec)
		}
	}
}

func TestEncodeLowercase(t *testing.T) {
	if got := Encode([]byte{0xde, 0xad, 0xbe, 0xef}); got != "deadbeef" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeUppercase(t *testing.T) {
	dec, err := Decode("DeadBEEF")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("got %x", dec)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		in     string
		offset int
	}{
		{"a", 1},
		{"abc", 3},
		{"xy", 0},
		{"ax", 1},
		{"00g0", 2},
		{"000 ", 3},
	} {
		_, err := Decode(tc.in)
		if err == nil {
			t.Fatalf("Decode(%q): no error", tc.in)
		}
		if !errors.Is(err, ErrDecode) {
			t.Fatalf("Decode(%q): %v does not wrap ErrDecode", tc.in, err)
		}
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("Decode(%q): %T is not *DecodeError", tc.in, err)
		}
		if de.Offset != tc.offset {
			t.Errorf("Decode(%q): offset %d, want %d", tc.in, de.Offset, tc.offset)
		}
	}
}
