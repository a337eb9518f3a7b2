// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Create rounds in the pending pre-state and start them from a word source.
//   - Validate and apply letter guesses, revealing every matching position.
//   - Track state transitions: pending → playing → won/lost.
//
// Notes:
//   - Words and guesses go through letters.Normalize, so accents never matter.
//   - Status is derived from the mask and the attempts counter, never stored.
//   - A Round is not safe for concurrent use; callers serialize access
//     (see store.Store.Update).
package game

import (
	"context"
	"sort"
	"strings"

	"github.com/robalobadob/hangman/internal/letters"
)

// WordSource supplies the secret word of a new round. Implementations
// never fail; they fall back to a fixed word instead.
type WordSource interface {
	Word(ctx context.Context) string
}

// New constructs a round in the pending state. Guesses are rejected until
// Start or Reset provides a word.
func New(id string) *Round {
	return &Round{ID: id, guessed: make(map[rune]struct{})}
}

// Start fetches a word from src and resets the round with it.
func (r *Round) Start(ctx context.Context, src WordSource) error {
	return r.Reset(src.Word(ctx))
}

// Reset discards all round state and begins again with word.
// Returns ErrInvalidWord (leaving the round untouched) if word, once
// normalized, is not made of letters and spaces.
func (r *Round) Reset(word string) error {
	w := letters.Normalize(strings.TrimSpace(word))
	if !letters.IsWord(w) {
		return ErrInvalidWord
	}
	r.secret = []rune(w)
	r.mask = []rune(letters.Mask(w))
	r.attempts = MaxAttempts
	r.guessed = make(map[rune]struct{})
	return nil
}

// Pending puts the round back into the pre-start state, e.g. while a
// replacement word is being fetched.
func (r *Round) Pending() {
	r.secret, r.mask = nil, nil
	r.attempts = 0
	r.guessed = make(map[rune]struct{})
}

// Guess applies a single letter guess.
//
// Validation rules:
//   - The round must be started and not finished.
//   - letter must normalize to exactly one letter.
//
// A repeated letter returns OutcomeAlreadyTried and changes nothing.
func (r *Round) Guess(letter string) (Outcome, error) {
	switch st := r.Status(); {
	case st == StatusPending:
		return "", ErrNotStarted
	case st.Terminal():
		return "", ErrRoundOver
	}
	l, ok := letters.Letter(letter)
	if !ok {
		return "", ErrInvalidLetter
	}
	if _, seen := r.guessed[l]; seen {
		return OutcomeAlreadyTried, nil
	}
	r.guessed[l] = struct{}{}

	hit := false
	for i, c := range r.secret {
		if c == l {
			r.mask[i] = c
			hit = true
		}
	}
	if hit {
		return OutcomeCorrect, nil
	}
	if r.attempts > 0 {
		r.attempts--
	}
	return OutcomeIncorrect, nil
}

// Status derives the round state. A full reveal wins even if the same
// guess used up the last attempt.
func (r *Round) Status() Status {
	switch {
	case r.secret == nil:
		return StatusPending
	case string(r.mask) == string(r.secret):
		return StatusWon
	case r.attempts == 0:
		return StatusLost
	}
	return StatusPlaying
}

// Mask is the word with unguessed letters replaced by '_'.
func (r *Round) Mask() string { return string(r.mask) }

// Secret is the normalized secret word ("" while pending).
func (r *Round) Secret() string { return string(r.secret) }

// Attempts is the number of incorrect guesses still allowed.
func (r *Round) Attempts() int { return r.attempts }

// Guessed returns the tried letters in alphabetical order.
func (r *Round) Guessed() []rune {
	out := make([]rune, 0, len(r.guessed))
	for l := range r.guessed {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasGuessed reports whether letter (normalized) was already tried.
func (r *Round) HasGuessed(letter rune) bool {
	l, ok := letters.Letter(string(letter))
	if !ok {
		return false
	}
	_, seen := r.guessed[l]
	return seen
}

// Message is the end-of-round text shown to the player, empty while the
// round is still open.
func (r *Round) Message() string {
	switch r.Status() {
	case StatusWon:
		return "¡Felicidades! Has ganado."
	case StatusLost:
		return "Game Over. La palabra era: " + r.Secret()
	}
	return ""
}

// Clone returns a deep copy.
func (r *Round) Clone() *Round {
	c := &Round{
		ID:       r.ID,
		Owner:    r.Owner,
		secret:   append([]rune(nil), r.secret...),
		mask:     append([]rune(nil), r.mask...),
		attempts: r.attempts,
		guessed:  make(map[rune]struct{}, len(r.guessed)),
	}
	for l := range r.guessed {
		c.guessed[l] = struct{}{}
	}
	return c
}
