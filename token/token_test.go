package token

import "testing"

func TestNeedsQuote(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"", true},
		{"hello", false},
		{"hello-world_9", false},
		{"∞", false},
		{"https://hello.world/1", true},
		{"a b", true},
		{"a,b", true},
		{"a:b", true},
		{"(x)", true},
		{`a\b`, true},
		{`a"b`, true},
		{"tab\there", true},
	} {
		if got := NeedsQuote(tc.in); got != tc.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestQuoteString(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"", `""`},
		{"a", `"a"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"a,b:c", `"a,b:c"`},
	} {
		if got := QuoteString(tc.in); got != tc.want {
			t.Errorf("QuoteString(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestAppendTypeTag(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"int", "(int)"},
		{"", "()"},
		{`a)b`, `(a\)b)`},
		{`a\b`, `(a\\b)`},
	} {
		if got := string(AppendTypeTag(nil, tc.in)); got != tc.want {
			t.Errorf("AppendTypeTag(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
