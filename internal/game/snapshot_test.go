package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Restore(t *testing.T) {
	r := started(t, "CAFE CON LECHE")
	r.Owner = "p1"
	_, _ = r.Guess("e")
	_, _ = r.Guess("z")

	snap := r.Snapshot()
	assert.Equal(t, "CAFE CON LECHE", snap.Secret)
	assert.Equal(t, "___E ___ _E__E", snap.Mask)
	assert.Equal(t, "EZ", snap.Guessed)
	assert.Equal(t, 5, snap.Attempts)

	back, err := Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, r.ID, back.ID)
	assert.Equal(t, "p1", back.Owner)
	assert.Equal(t, r.Mask(), back.Mask())
	assert.Equal(t, r.Attempts(), back.Attempts())
	assert.Equal(t, r.Guessed(), back.Guessed())
	assert.Equal(t, StatusPlaying, back.Status())
}

func TestRestore_Pending(t *testing.T) {
	back, err := Restore(New("p").Snapshot())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, back.Status())
}

func TestRestore_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
	}{
		{"mask length", Snapshot{Secret: "GATO", Mask: "___", Attempts: 6}},
		{"lowercase secret", Snapshot{Secret: "gato", Mask: "____", Attempts: 6}},
		{"digits", Snapshot{Secret: "G4TO", Mask: "____", Attempts: 6}},
		{"attempts range", Snapshot{Secret: "GATO", Mask: "____", Attempts: 7}},
		{"attempts vs misses", Snapshot{Secret: "GATO", Mask: "____", Attempts: 6, Guessed: "X"}},
		{"revealed unguessed", Snapshot{Secret: "GATO", Mask: "G___", Attempts: 6}},
		{"hidden guessed", Snapshot{Secret: "GATO", Mask: "____", Attempts: 6, Guessed: "G"}},
		{"hidden space", Snapshot{Secret: "A B", Mask: "___", Attempts: 6}},
		{"bad guessed", Snapshot{Secret: "GATO", Mask: "____", Attempts: 6, Guessed: "1"}},
		{"pending with progress", Snapshot{Guessed: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.snap)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
