package letters

// Keyboard is the fixed on-screen layout. The first row wraps over the
// display; the second is the short last row.
var Keyboard = [][]rune{
	[]rune("ABCDEFGHIJKLMNÑOPQRST"),
	[]rune("UVWXYZ"),
}

// IsKey reports whether r is accepted from a physical keyboard: an
// unaccented Latin letter, either case.
func IsKey(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z'
}

// KeyLetter returns the letter a keyboard key guesses. Ñ guesses N.
func KeyLetter(key rune) rune {
	r, ok := Letter(string(key))
	if !ok {
		return key
	}
	return r
}
