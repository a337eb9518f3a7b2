// internal/letters/letters.go
//
// Text normalization shared by the word sources and the game engine.
// Responsibilities:
//   - Normalize: decompose, drop diacritical marks, recompose, uppercase.
//   - Letter:    turn a raw guess ("é", "n", " A ") into a single letter rune.
//   - IsWord:    check that a normalized word is usable as a secret.
//
// Notes:
//   - The same Normalize is applied to secrets, the fallback word and every
//     guess, so "É" and "E" compare equal everywhere.
//   - Transformers from x/text keep internal state; a fresh chain is built
//     per call so Normalize is safe for concurrent use.

package letters

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Placeholder marks an unrevealed position of a word.
const Placeholder = '_'

// Normalize strips every nonspacing mark (accents, tildes, diaeresis) and
// uppercases s. Normalize(Normalize(s)) == Normalize(s).
//
// Marks go before case: letters such as 'ǰ' have no precomposed uppercase
// form and would otherwise come out as a lowercase base letter.
func Normalize(s string) string {
	return stripMarks(strings.ToUpper(stripMarks(s)))
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// Only reachable on invalid UTF-8; leave the marks in.
		return s
	}
	return out
}

// Letter normalizes a raw guess and reports whether it is exactly one letter.
// Surrounding whitespace is ignored.
func Letter(s string) (rune, bool) {
	n := Normalize(strings.TrimSpace(s))
	if utf8.RuneCountInString(n) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(n)
	if !unicode.IsLetter(r) {
		return 0, false
	}
	return r, true
}

// IsWord reports whether s is non-empty, consists only of letters and
// spaces, and contains at least one letter.
func IsWord(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case r == ' ':
		case unicode.IsLetter(r):
			hasLetter = true
		default:
			return false
		}
	}
	return hasLetter
}

// Mask returns s with every non-space rune replaced by Placeholder.
func Mask(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' {
			return r
		}
		return Placeholder
	}, s)
}
