package dict_test

import (
	"testing"

	"rootdict/dict"
)

func TestNormalizeKeyExamples(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ab", "ab"},
		{"AB", "ab"},
		{"A b C", "abc"},
		{"',.[]", "',.[]"},
		{"qu1ck!", "quck"},
		{"日本語ab", "ab"},
		{"abcdefgh", "abcde"},
		{"", ""},
		{"123", ""},
	}
	for _, c := range cases {
		if got := dict.NormalizeKey(c.in); got != c.want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	inputs := []string{"AB,cd", "Hello World!", "[']", "ZZZZZZZZ", "éàç", "a.b,c"}
	for _, in := range inputs {
		once := dict.NormalizeKey(in)
		twice := dict.NormalizeKey(once)
		if once != twice {
			t.Fatalf("NormalizeKey not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeKeyAlphabetClosure(t *testing.T) {
	inputs := []string{"MiXeD CaSe 42", "tab\there", "ünïcode", "a'b[c]d,e.f", "CTRL\x01chars"}
	for _, in := range inputs {
		out := dict.NormalizeKey(in)
		for _, r := range out {
			ok := (r >= 'a' && r <= 'z') || r == ',' || r == '.' || r == '[' || r == ']' || r == '\''
			if !ok {
				t.Fatalf("NormalizeKey(%q) = %q contains %q outside the root alphabet", in, out, r)
			}
		}
		if len([]rune(out)) > dict.MaxKeyLen {
			t.Fatalf("NormalizeKey(%q) = %q longer than %d runes", in, out, dict.MaxKeyLen)
		}
	}
}

func TestNormalizeValueNFC(t *testing.T) {
	// combining acute accent composes with the base letter
	decomposed := "café"
	composed := "café"
	if got := dict.NormalizeValue(decomposed); got != composed {
		t.Fatalf("NormalizeValue(%q) = %q, want %q", decomposed, got, composed)
	}
	if got := dict.NormalizeValue(composed); got != composed {
		t.Fatalf("NormalizeValue should leave composed text alone, got %q", got)
	}
}
