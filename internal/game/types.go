// internal/game/types.go
//
// Core type definitions for the hangman round engine.
// Defines:
//   - Status:   derived round state (pending/playing/won/lost).
//   - Outcome:  result of a single letter guess.
//   - Round:    state for a single in-progress or finished round.
//   - Snapshot: flat, storable view of a Round.

package game

import "errors"

// MaxAttempts is the number of incorrect guesses a round allows.
const MaxAttempts = 6

// Status is the derived state of a round.
type Status string

const (
	StatusPending Status = "pending" // word not chosen yet
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// Outcome is the evaluation result of a guess.
type Outcome string

const (
	OutcomeAlreadyTried Outcome = "already_tried"
	OutcomeCorrect      Outcome = "correct"
	OutcomeIncorrect    Outcome = "incorrect"
)

var (
	ErrNotStarted    = errors.New("round not started")
	ErrRoundOver     = errors.New("round over")
	ErrInvalidLetter = errors.New("invalid letter")
	ErrInvalidWord   = errors.New("invalid word")
	ErrCorrupt       = errors.New("corrupt round snapshot")
)

// Round holds the state of a single hangman round.
// The secret, mask, attempts and guessed set are only reachable through
// methods so the round invariants cannot be broken from outside.
type Round struct {
	ID    string // Unique round identifier.
	Owner string // Player session that created the round.

	secret   []rune            // normalized word, immutable between resets
	mask     []rune            // same length as secret
	attempts int               // remaining incorrect guesses
	guessed  map[rune]struct{} // normalized letters tried this round
}

// Snapshot is a storable copy of a Round.
type Snapshot struct {
	ID       string `json:"id"`
	Owner    string `json:"owner"`
	Secret   string `json:"secret"`
	Mask     string `json:"mask"`
	Attempts int    `json:"attempts"`
	Guessed  string `json:"guessed"` // tried letters, sorted
}
