package common

import (
	"strings"
	"unicode"
)

// Pascal converts an identifier to PascalCase. It accepts snake_case,
// SCREAMING_SNAKE, kebab-case, and camelCase inputs, so spec enum members
// like "SAVINGS_ACCOUNT" become "SavingsAccount" and field names like
// "customer" become "Customer".
func Pascal(s string) string {
	var b strings.Builder

	for _, w := range words(s) {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}

	return b.String()
}

// Snake converts an identifier to lower snake_case. Used to derive the
// conventional Go source file name for a schema ("AccountHolder" ->
// "account_holder").
func Snake(s string) string {
	ws := words(s)
	for i := range ws {
		ws[i] = strings.ToLower(ws[i])
	}

	return strings.Join(ws, "_")
}

// words splits an identifier into word parts on delimiters and on
// lower-to-upper case boundaries. Runs of upper case stay one word.
func words(s string) []string {
	var out []string

	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = nil
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]):
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}

	flush()

	return out
}
