package game

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource string

func (f fixedSource) Word(context.Context) string { return string(f) }

func started(t *testing.T, word string) *Round {
	t.Helper()
	r := New("r1")
	require.NoError(t, r.Start(context.Background(), fixedSource(word)))
	return r
}

func TestNew_Pending(t *testing.T) {
	r := New("r1")
	assert.Equal(t, StatusPending, r.Status())
	assert.Equal(t, "", r.Mask())

	_, err := r.Guess("A")
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Empty(t, r.Guessed())
}

func TestStart(t *testing.T) {
	r := started(t, "gato")
	assert.Equal(t, "GATO", r.Secret())
	assert.Equal(t, "____", r.Mask())
	assert.Equal(t, MaxAttempts, r.Attempts())
	assert.Equal(t, StatusPlaying, r.Status())
	assert.Empty(t, r.Guessed())
}

func TestStart_SpacesRevealed(t *testing.T) {
	r := started(t, "Café con leche")
	assert.Equal(t, "CAFE CON LECHE", r.Secret())
	assert.Equal(t, "____ ___ _____", r.Mask())

	for _, l := range []string{"C", "A", "F", "E", "O", "N", "L", "H"} {
		_, err := r.Guess(l)
		require.NoError(t, err)
	}
	assert.Equal(t, "CAFE CON LECHE", r.Mask())
	assert.Equal(t, StatusWon, r.Status())
	assert.Equal(t, MaxAttempts, r.Attempts())
}

func TestReset_InvalidWord(t *testing.T) {
	r := started(t, "GATO")
	assert.ErrorIs(t, r.Reset("R2-D2"), ErrInvalidWord)
	assert.ErrorIs(t, r.Reset("   "), ErrInvalidWord)
	assert.Equal(t, "GATO", r.Secret(), "failed reset must not touch the round")
}

func TestReset_ReplacesWholesale(t *testing.T) {
	r := started(t, "GATO")
	r.Owner = "p1"
	_, _ = r.Guess("G")
	_, _ = r.Guess("X")

	require.NoError(t, r.Reset("perro"))
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, "p1", r.Owner)
	assert.Equal(t, "PERRO", r.Secret())
	assert.Equal(t, "_____", r.Mask())
	assert.Equal(t, MaxAttempts, r.Attempts())
	assert.Empty(t, r.Guessed())
}

func TestGuess_WinScenario(t *testing.T) {
	r := started(t, "GATO")
	wantMasks := []string{"G___", "GA__", "GAT_", "GATO"}
	for i, l := range []string{"G", "A", "T", "O"} {
		out, err := r.Guess(l)
		require.NoError(t, err)
		assert.Equal(t, OutcomeCorrect, out)
		assert.Equal(t, wantMasks[i], r.Mask())
		assert.Equal(t, MaxAttempts, r.Attempts())
	}
	assert.Equal(t, StatusWon, r.Status())
	assert.Equal(t, "¡Felicidades! Has ganado.", r.Message())
}

func TestGuess_LossScenario(t *testing.T) {
	r := started(t, "GATO")
	misses := []string{"X", "Q", "Z", "W", "K", "J"}
	for i, l := range misses {
		assert.Equal(t, StatusPlaying, r.Status(), "before miss %d", i+1)
		out, err := r.Guess(l)
		require.NoError(t, err)
		assert.Equal(t, OutcomeIncorrect, out)
		assert.Equal(t, MaxAttempts-i-1, r.Attempts())
		assert.Equal(t, "____", r.Mask())
	}
	assert.Equal(t, StatusLost, r.Status())
	assert.Equal(t, "Game Over. La palabra era: GATO", r.Message())
}

func TestGuess_RepeatedMissCountsOnce(t *testing.T) {
	r := started(t, "GATO")
	out, err := r.Guess("X")
	require.NoError(t, err)
	assert.Equal(t, OutcomeIncorrect, out)

	for i := 0; i < 5; i++ {
		out, err = r.Guess("x")
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyTried, out)
	}
	assert.Equal(t, MaxAttempts-1, r.Attempts())
	assert.Equal(t, StatusPlaying, r.Status())
}

func TestGuess_RevealsEveryOccurrence(t *testing.T) {
	r := started(t, "PROGRAMACION")
	out, err := r.Guess("a")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, out)
	assert.Equal(t, "_____A_A____", r.Mask())
	assert.Equal(t, MaxAttempts, r.Attempts())

	_, _ = r.Guess("R")
	assert.Equal(t, "_R__RA_A____", r.Mask())
}

func TestGuess_AccentInsensitive(t *testing.T) {
	r := started(t, "canción")
	assert.Equal(t, "CANCION", r.Secret())

	out, err := r.Guess("ó")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, out)
	assert.Equal(t, "_____O_", r.Mask())

	out, err = r.Guess("O")
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyTried, out)
	assert.True(t, r.HasGuessed('Ó'))
	assert.True(t, r.HasGuessed('o'))
}

func TestGuess_EnyeMatchesN(t *testing.T) {
	r := started(t, "niño")
	assert.Equal(t, "NINO", r.Secret())
	_, err := r.Guess("Ñ")
	require.NoError(t, err)
	assert.Equal(t, "N_N_", r.Mask())
}

func TestGuess_LetterWithoutUppercaseForm(t *testing.T) {
	// ǰ has no precomposed uppercase form.
	r := started(t, "\u01f0oven")
	assert.Equal(t, "JOVEN", r.Secret())

	out, err := r.Guess("j")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCorrect, out)
	assert.Equal(t, "J____", r.Mask())
	assert.Equal(t, MaxAttempts, r.Attempts())

	restored, err := Restore(r.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, "J____", restored.Mask())
}

func TestGuess_InvalidLetter(t *testing.T) {
	r := started(t, "GATO")
	for _, in := range []string{"", "GA", "7", "?", " "} {
		_, err := r.Guess(in)
		assert.ErrorIs(t, err, ErrInvalidLetter, "input %q", in)
	}
	assert.Empty(t, r.Guessed())
	assert.Equal(t, MaxAttempts, r.Attempts())
}

func TestGuess_AfterRoundOver(t *testing.T) {
	r := started(t, "GO")
	_, _ = r.Guess("G")
	_, _ = r.Guess("O")
	require.Equal(t, StatusWon, r.Status())

	_, err := r.Guess("X")
	assert.ErrorIs(t, err, ErrRoundOver)
	assert.Equal(t, "GO", r.Mask())
	assert.Equal(t, MaxAttempts, r.Attempts())
	assert.Len(t, r.Guessed(), 2)
}

func TestGuess_Invariants(t *testing.T) {
	r := started(t, "CAFE CON LECHE")
	prev := r.Attempts()
	for _, l := range "ZQXCWKJYVE" {
		prevMask := r.Mask()
		out, err := r.Guess(string(l))
		if r.Status().Terminal() && err != nil {
			assert.ErrorIs(t, err, ErrRoundOver)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, utf8.RuneCountInString(r.Secret()), utf8.RuneCountInString(r.Mask()))
		assert.LessOrEqual(t, r.Attempts(), prev)
		assert.GreaterOrEqual(t, r.Attempts(), 0)
		if out == OutcomeCorrect {
			assert.Equal(t, prev, r.Attempts())
		} else {
			assert.Equal(t, prevMask, r.Mask())
		}
		prev = r.Attempts()
	}
}

func TestStatus_WinTakesPrecedence(t *testing.T) {
	// Five misses, then the final letter on the last attempt.
	r := started(t, "A")
	for _, l := range "BCDEF" {
		_, err := r.Guess(string(l))
		require.NoError(t, err)
	}
	assert.Equal(t, 1, r.Attempts())
	_, err := r.Guess("A")
	require.NoError(t, err)
	assert.Equal(t, StatusWon, r.Status())

	// Status derivation itself prefers the win when both hold.
	s, err := Restore(Snapshot{ID: "x", Secret: "A", Mask: "A", Attempts: 1, Guessed: "ABCDEF"})
	require.NoError(t, err)
	s.attempts = 0
	assert.Equal(t, StatusWon, s.Status())
}

func TestPending_AfterStart(t *testing.T) {
	r := started(t, "GATO")
	_, _ = r.Guess("G")
	r.Pending()
	assert.Equal(t, StatusPending, r.Status())
	_, err := r.Guess("A")
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Empty(t, r.Guessed())
}

func TestClone_Independent(t *testing.T) {
	r := started(t, "GATO")
	c := r.Clone()
	_, _ = c.Guess("G")
	assert.Equal(t, "____", r.Mask())
	assert.Equal(t, "G___", c.Mask())
	assert.False(t, r.HasGuessed('G'))

	p := New("p").Clone()
	assert.Equal(t, StatusPending, p.Status())
}
