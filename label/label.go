// Package label holds the static table of supported currency codes.
//
// The *_gen.go files are rendered by tools/unitfxgen from the ISO-4217 and
// CLDR assets embedded in internal/gen. Everything else in the package is
// hand-written.
package label

import "errors"

// ErrInvalidCode reports a string that does not satisfy the currency code
// format: at least three characters, every one an uppercase ASCII letter.
var ErrInvalidCode = errors.New("invalid currency code")

// Symbol is an alphabetic ISO-4217-like currency code, such as "EUR".
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

// Valid reports whether s is a well-formed currency code: len(s) >= 3 and
// every byte in 'A'..'Z'. When testing a longer string that merely starts
// with a code, pass the leading three characters.
func Valid(s string) bool {
	if len(s) < 3 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}
