package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/hangman/internal/letters"
)

// Snapshot flattens the round for storage.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		ID:       r.ID,
		Owner:    r.Owner,
		Secret:   string(r.secret),
		Mask:     string(r.mask),
		Attempts: r.attempts,
		Guessed:  string(r.Guessed()),
	}
}

// Restore rebuilds a Round from a snapshot, rejecting data that breaks the
// round invariants with an error wrapping ErrCorrupt.
func Restore(s Snapshot) (*Round, error) {
	r := New(s.ID)
	r.Owner = s.Owner
	for _, l := range s.Guessed {
		if ll, ok := letters.Letter(string(l)); !ok || ll != l {
			return nil, fmt.Errorf("%w: guessed letter %q", ErrCorrupt, l)
		}
		r.guessed[l] = struct{}{}
	}
	if s.Secret == "" {
		if s.Mask != "" || len(r.guessed) > 0 {
			return nil, fmt.Errorf("%w: pending round with progress", ErrCorrupt)
		}
		return r, nil
	}
	if !letters.IsWord(s.Secret) || letters.Normalize(s.Secret) != s.Secret {
		return nil, fmt.Errorf("%w: secret %q", ErrCorrupt, s.Secret)
	}
	if utf8.RuneCountInString(s.Mask) != utf8.RuneCountInString(s.Secret) {
		return nil, fmt.Errorf("%w: mask length", ErrCorrupt)
	}
	if s.Attempts < 0 || s.Attempts > MaxAttempts {
		return nil, fmt.Errorf("%w: attempts %d", ErrCorrupt, s.Attempts)
	}
	secret, mask := []rune(s.Secret), []rune(s.Mask)
	misses := 0
	for l := range r.guessed {
		if !strings.ContainsRune(s.Secret, l) {
			misses++
		}
	}
	if s.Attempts != MaxAttempts-misses {
		return nil, fmt.Errorf("%w: attempts %d after %d misses", ErrCorrupt, s.Attempts, misses)
	}
	for i := range secret {
		_, seen := r.guessed[secret[i]]
		revealed := secret[i] == ' ' || seen
		if revealed && mask[i] != secret[i] || !revealed && mask[i] != letters.Placeholder {
			return nil, fmt.Errorf("%w: mask %q", ErrCorrupt, s.Mask)
		}
	}
	r.secret, r.mask, r.attempts = secret, mask, s.Attempts
	return r, nil
}
