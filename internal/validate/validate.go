package validate

import "strings"

// LengthBetween returns true if n is within [min,max].
func LengthBetween(s string, min, max int) bool {
	n := len(s)
	return n >= min && n <= max
}

// IsAlphabet returns true if all characters in s are in the allowed set.
func IsAlphabet(s, allowed string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(allowed, rune(s[i])) {
			return false
		}
	}
	return true
}

// Expressible reports whether target can be produced by enumerating over
// chars. An inexpressible target can never be found by exhaustive search,
// only by a wordlist. The empty target is trivially expressible.
func Expressible(target, chars string) bool {
	if target == "" {
		return true
	}
	return IsAlphabet(target, chars)
}

// SearchLength checks a requested candidate length. Zero means "derive
// from the target" and is allowed; negatives are not, and lengths past
// maxSearchLength are rejected as unenumerable.
func SearchLength(n int) bool {
	return n >= 0 && n <= maxSearchLength
}

// maxSearchLength bounds --length. 26^64 is far beyond any budget, so
// larger requests are almost certainly typos.
const maxSearchLength = 64
