package dict

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxKeyLen is the longest root key the engine accepts.
const MaxKeyLen = 5

func allowedKeyRune(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	switch r {
	case ',', '.', '[', ']', '\'':
		return true
	}
	return false
}

// NormalizeKey is the live filter for the root-key field: lowercase, drop
// anything outside the root alphabet, cap at MaxKeyLen runes. Invalid input
// is cleaned, never rejected; the caller reflects the result back into the
// field with the cursor at the end.
func NormalizeKey(raw string) string {
	lower := strings.ToLower(raw)
	var b strings.Builder
	n := 0
	for _, r := range lower {
		if !allowedKeyRune(r) {
			continue
		}
		if n == MaxKeyLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// NormalizeValue puts word text into NFC so the same entry typed in different
// compositions compares equal and round-trips through the file identically.
func NormalizeValue(raw string) string {
	return norm.NFC.String(raw)
}
