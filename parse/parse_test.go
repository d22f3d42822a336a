package parse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recorder flattens the event stream into strings for comparison.
type recorder struct {
	events []string
}

func (r *recorder) ObjectBegin() error { r.events = append(r.events, "{"); return nil }
func (r *recorder) ObjectEnd() error   { r.events = append(r.events, "}"); return nil }
func (r *recorder) ArrayBegin() error  { r.events = append(r.events, "["); return nil }
func (r *recorder) ArrayEnd() error    { r.events = append(r.events, "]"); return nil }
func (r *recorder) Key(v string) error {
	r.events = append(r.events, "key="+v)
	return nil
}
func (r *recorder) Type(v string) error {
	r.events = append(r.events, "type="+v)
	return nil
}
func (r *recorder) Primitive(v string) error {
	r.events = append(r.events, "prim="+v)
	return nil
}

func run(t *testing.T, in string) ([]string, error) {
	t.Helper()
	rec := &recorder{}
	p := New(rec)
	n, err := p.Feed([]byte(in), true)
	if err == nil && n != len(in) {
		t.Errorf("Feed(%q) consumed %d of %d", in, n, len(in))
	}
	return rec.events, err
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []string
	}{
		{`1`, []string{"prim=1"}},
		{`"hello world"`, []string{"prim=hello world"}},
		{`""`, []string{"prim="}},
		{`[]`, []string{"[", "]"}},
		{`{}`, []string{"{", "}"}},
		{`[1]`, []string{"[", "prim=1", "]"}},
		{`[1,]`, []string{"[", "prim=1", "]"}},
		{`[1, 2, 3]`, []string{"[", "prim=1", "prim=2", "prim=3", "]"}},
		{`{a: 1}`, []string{"{", "key=a", "prim=1", "}"}},
		{`{a: 1,}`, []string{"{", "key=a", "prim=1", "}"}},
		{`{"a b": 1}`, []string{"{", "key=a b", "prim=1", "}"}},
		{`(int) 3`, []string{"type=int", "prim=3"}},
		{`(int)3`, []string{"type=int", "prim=3"}},
		{`() x`, []string{"type=", "prim=x"}},
		{`(list) [1]`, []string{"type=list", "[", "prim=1", "]"}},
		{`{a: (f) {}}`, []string{"{", "key=a", "type=f", "{", "}", "}"}},
		{
			`{fruit: [apple, "star fruit"], count: 2}`,
			[]string{
				"{", "key=fruit", "[", "prim=apple", "prim=star fruit", "]",
				"key=count", "prim=2", "}",
			},
		},
		{"\t[\n 1 ,\r\n 2 \n]\n", []string{"[", "prim=1", "prim=2", "]"}},
		{`1,`, []string{"prim=1"}},
		{`word`, []string{"prim=word"}},
		{`-3.25e4`, []string{"prim=-3.25e4"}},
		// Escapes keep the next byte literally.
		{`"a\"b"`, []string{`prim=a"b`}},
		{`"a\\b"`, []string{`prim=a\b`}},
		{`a\,b`, []string{"prim=a,b"}},
		{`a\ b`, []string{"prim=a b"}},
		{`\,b`, []string{"prim=,b"}},
		{`[\]]`, []string{"[", "prim=]", "]"}},
		{`{\:a: 1}`, []string{"{", "key=:a", "prim=1", "}"}},
		{`(we\)ird) 1`, []string{"type=we)ird", "prim=1"}},
		{`{a\:b: 1}`, []string{"{", "key=a:b", "prim=1", "}"}},
		// Bare words terminate at structure, not at their content.
		{`[true,false,null]`, []string{"[", "prim=true", "prim=false", "prim=null", "]"}},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := run(t, tc.in)
			if err != nil {
				t.Fatalf("Feed(%q): %v", tc.in, err)
			}
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("events mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in  string
		pos int64
	}{
		{``, 0},
		{`]`, 0},
		{`}`, 0},
		{`,`, 0},
		{`:`, 0},
		{`hello world`, 6},
		{`1 2`, 2},
		{`1,,`, 2},
		{`[1}`, 2},
		{`{a: 1]`, 5},
		{`{a 1}`, 3},
		{`{a:`, 3},
		{`{[]: 1}`, 1},
		{`[,1]`, 1},
		{`{,}`, 1},
		{`(a)(b) 1`, 3},
		{`(a)`, 3},
		{`(a) ]`, 4},
		{`[1`, 2},
		{`{a: 1`, 5},
		{`"abc`, 4},
		{`(abc`, 4},
		{`1\`, 2},
		{`\`, 1},
		{`[1 2]`, 3},
	} {
		t.Run(tc.in, func(t *testing.T) {
			_, err := run(t, tc.in)
			if err == nil {
				t.Fatalf("Feed(%q): no error", tc.in)
			}
			if !IsSyntax(err) {
				t.Fatalf("Feed(%q): not a syntax error: %v", tc.in, err)
			}
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Feed(%q): %T is not *SyntaxError", tc.in, err)
			}
			if se.Pos != tc.pos {
				t.Errorf("Feed(%q): offset %d, want %d (%v)", tc.in, se.Pos, tc.pos, err)
			}
		})
	}
}

func TestSyntaxErrorFormat(t *testing.T) {
	_, err := run(t, `{a 1}`)
	if err == nil {
		t.Fatal("no error")
	}
	want := fmt.Sprintf("%s [offset %d]", err.(*SyntaxError).Msg, 3)
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestListenerErrorPassThrough(t *testing.T) {
	boom := errors.New("boom")
	p := New(&Callbacks{
		OnPrimitive: func(v string) error {
			if v == "2" {
				return boom
			}
			return nil
		},
	})
	_, err := p.Feed([]byte(`[1, 2, 3]`), true)
	if err != boom {
		t.Fatalf("got %v, want the listener's error unmodified", err)
	}
	if IsSyntax(err) {
		t.Error("listener error must not look like a syntax error")
	}
	// Terminal afterwards.
	if _, err := p.Feed([]byte(`x`), false); err != boom {
		t.Errorf("after failure Feed returned %v, want the stored error", err)
	}
}

func TestKeyErrorPassThrough(t *testing.T) {
	boom := errors.New("boom")
	var events []string
	p := New(&Callbacks{
		OnObjectBegin: func() error {
			events = append(events, "{")
			return nil
		},
		OnKey: func(v string) error {
			return boom
		},
		OnPrimitive: func(v string) error {
			events = append(events, "prim="+v)
			return nil
		},
	})
	_, err := p.Feed([]byte(`{a: 1}`), true)
	if err != boom {
		t.Fatalf("got %v, want the listener's error unmodified", err)
	}
	if IsSyntax(err) {
		t.Error("listener error must not look like a syntax error")
	}
	if d := cmp.Diff([]string{"{"}, events); d != "" {
		t.Errorf("events after failing key (-want +got):\n%s", d)
	}
}

func TestCallbacksNilMembers(t *testing.T) {
	p := New(&Callbacks{})
	if _, err := p.Feed([]byte(`{a: (t) [1,]}`), true); err != nil {
		t.Fatal(err)
	}
}

func TestPosition(t *testing.T) {
	in := `{a: [1, 2]}`
	p := New(&recorder{})
	if _, err := p.Feed([]byte(in), true); err != nil {
		t.Fatal(err)
	}
	if got := p.Position(); got != int64(len(in)) {
		t.Errorf("Position() = %d, want %d", got, len(in))
	}
}

func TestFinishWhileOpen(t *testing.T) {
	p := New(&recorder{})
	if n, err := p.Feed([]byte(`{a: [1`), false); err != nil || n != 6 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if _, err := p.Feed(nil, true); !IsSyntax(err) {
		t.Fatalf("finish on open structure: %v", err)
	}
}

func TestFeedIncremental(t *testing.T) {
	rec := &recorder{}
	p := New(rec)
	// A quoted token dangling across the boundary emits nothing yet.
	if n, err := p.Feed([]byte(`["ab`), false); err != nil || n != 4 {
		t.Fatalf("first chunk: n=%d err=%v", n, err)
	}
	if len(rec.events) != 1 || rec.events[0] != "[" {
		t.Fatalf("events after first chunk: %v", rec.events)
	}
	if _, err := p.Feed([]byte(`cd"]`), true); err != nil {
		t.Fatal(err)
	}
	want := []string{"[", "prim=abcd", "]"}
	if d := cmp.Diff(want, rec.events); d != "" {
		t.Errorf("events mismatch (-want +got):\n%s", d)
	}
}
