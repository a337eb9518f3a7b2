package gallows

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
)

func TestStage(t *testing.T) {
	assert.Equal(t, 7, Stages)
	assert.Equal(t, game.MaxAttempts, len(order))
	for attempts := 0; attempts <= 6; attempts++ {
		assert.Equal(t, 6-attempts, Stage(attempts))
	}
	assert.Equal(t, 0, Stage(9))
	assert.Equal(t, 6, Stage(-1))
}

func TestParts(t *testing.T) {
	tests := []struct {
		attempts int
		want     []Part
	}{
		{6, []Part{}},
		{5, []Part{Head}},
		{4, []Part{Head, Torso}},
		{3, []Part{Head, Torso, LeftArm}},
		{2, []Part{Head, Torso, LeftArm, RightArm}},
		{1, []Part{Head, Torso, LeftArm, RightArm, LeftLeg}},
		{0, []Part{Head, Torso, LeftArm, RightArm, LeftLeg, RightLeg}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parts(tt.attempts), "attempts %d", tt.attempts)
	}
	assert.NotNil(t, Parts(6))
	assert.NotNil(t, Parts(99))
}

func TestHas(t *testing.T) {
	assert.False(t, Has(6, Head))
	assert.True(t, Has(5, Head))
	assert.False(t, Has(5, Torso))
	assert.True(t, Has(0, RightLeg))
	assert.False(t, Has(1, RightLeg))
}

func TestPartString(t *testing.T) {
	assert.Equal(t, "left_arm", LeftArm.String())
	assert.Equal(t, "unknown", Part(42).String())
}

func TestASCII(t *testing.T) {
	bare := ASCII(6)
	assert.NotContains(t, bare, "O")
	assert.True(t, strings.HasPrefix(bare, "  +---+\n"))

	full := ASCII(0)
	assert.Equal(t, "  +---+\n  |   |\n  |   O\n  |  /|\\\n  |  / \\\n  |\n=========\n", full)

	assert.Equal(t, "  +---+\n  |   |\n  |   O\n  |  /|\n  |\n  |\n=========\n", ASCII(3))
}

func TestSVG(t *testing.T) {
	bare := string(SVG(6))
	assert.Equal(t, 4, strings.Count(bare, "<line"))
	assert.NotContains(t, bare, "<circle")

	head := string(SVG(5))
	assert.Contains(t, head, `<circle cx="100" cy="60" r="20"/>`)

	full := string(SVG(0))
	assert.Equal(t, 9, strings.Count(full, "<line"))
	assert.True(t, strings.HasSuffix(full, "</svg>"))
}

func TestPNG(t *testing.T) {
	for attempts := 0; attempts <= 6; attempts++ {
		var buf bytes.Buffer
		require.NoError(t, PNG(&buf, attempts))
		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, Size, img.Bounds().Dx())
	}

	dark := func(attempts, x, y int) bool {
		var buf bytes.Buffer
		require.NoError(t, PNG(&buf, attempts))
		img, err := png.Decode(&buf)
		require.NoError(t, err)
		r, _, _, _ := img.At(x, y).RGBA()
		return r < 0x8000
	}
	// On the base line.
	assert.True(t, dark(6, 100, 180))
	// Middle of the torso is only drawn from stage 2 on.
	assert.False(t, dark(5, 100, 105))
	assert.True(t, dark(4, 100, 105))
	// Top of the head.
	assert.False(t, dark(6, 100, 40+1))
	assert.True(t, dark(5, 120, 60))
}
