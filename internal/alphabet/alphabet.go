package alphabet

import (
	"strings"
	"unicode"
)

// Category tables, ASCII order. The search alphabet is always built from
// whole categories concatenated in this order, so enumeration order is a
// function of category membership alone.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Mode controls whether a character category is detected from the target,
// forced on, or forced off.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
)

// Valid reports whether m is a recognized mode string.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuto, ModeOn, ModeOff:
		return true
	}
	return false
}

func (m Mode) include(detected bool) bool {
	switch m {
	case ModeOn:
		return true
	case ModeOff:
		return false
	}
	return detected
}

// Alphabet is an ordered, duplicate-free character set to search over.
// It is immutable once built; the zero value is the empty alphabet.
type Alphabet struct {
	chars string
}

// New builds an alphabet from explicit category choices. Lowercase letters
// are always included.
func New(digits, symbols bool) Alphabet {
	s := Lowercase
	if digits {
		s += Digits
	}
	if symbols {
		s += Symbols
	}
	return Alphabet{chars: s}
}

// Build derives the alphabet from the target's composition: lowercase always,
// digits when the target contains one, symbols when it contains a character
// that is neither letter, digit, nor whitespace.
func Build(target string) Alphabet {
	return Compose(target, ModeAuto, ModeAuto)
}

// Compose is Build with per-category overrides. Unrecognized modes behave
// as ModeAuto.
func Compose(target string, digits, symbols Mode) Alphabet {
	return New(digits.include(HasDigit(target)), symbols.include(HasSymbol(target)))
}

// FromString builds an alphabet from an explicit character sequence,
// keeping first-occurrence order and dropping duplicates.
func FromString(chars string) Alphabet {
	var b strings.Builder
	var seen [256]bool
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if seen[c] {
			continue
		}
		seen[c] = true
		b.WriteByte(c)
	}
	return Alphabet{chars: b.String()}
}

// Empty returns the zero-size alphabet.
func Empty() Alphabet { return Alphabet{} }

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int { return len(a.chars) }

// String returns the alphabet's characters in enumeration order.
func (a Alphabet) String() string { return a.chars }

// Contains reports whether c is in the alphabet.
func (a Alphabet) Contains(c byte) bool {
	for i := 0; i < len(a.chars); i++ {
		if a.chars[i] == c {
			return true
		}
	}
	return false
}

// HasDigit reports whether s contains at least one digit.
func HasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// HasSymbol reports whether s contains a character that is neither letter,
// digit, nor whitespace. Whitespace alone never adds the symbol category.
func HasSymbol(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			continue
		}
		return true
	}
	return false
}
