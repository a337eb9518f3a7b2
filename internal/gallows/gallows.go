// Package gallows maps the remaining attempts of a round to the
// incremental hangman drawing and renders it.
//
// There are exactly seven cumulative stages. With six attempts left only the
// frame is drawn; every attempt lost adds one part in a fixed order: head,
// torso, left arm, right arm, left leg, right leg.
package gallows

// Part is one body part of the hanged figure.
type Part int

const (
	Head Part = iota
	Torso
	LeftArm
	RightArm
	LeftLeg
	RightLeg
)

// order is the drawing order; its length is the attempts budget.
var order = [...]Part{Head, Torso, LeftArm, RightArm, LeftLeg, RightLeg}

// Stages is the number of distinct drawings.
const Stages = len(order) + 1

func (p Part) String() string {
	switch p {
	case Head:
		return "head"
	case Torso:
		return "torso"
	case LeftArm:
		return "left_arm"
	case RightArm:
		return "right_arm"
	case LeftLeg:
		return "left_leg"
	case RightLeg:
		return "right_leg"
	}
	return "unknown"
}

// Stage returns the drawing stage 0..6 for the remaining attempts.
// Values outside 0..6 are clamped.
func Stage(attempts int) int {
	switch {
	case attempts < 0:
		attempts = 0
	case attempts > len(order):
		attempts = len(order)
	}
	return len(order) - attempts
}

// Parts lists the body parts drawn for the remaining attempts, in order.
// The bare frame yields an empty, non-nil slice.
func Parts(attempts int) []Part {
	n := Stage(attempts)
	return append(make([]Part, 0, n), order[:n]...)
}

// Has reports whether part p is drawn for the remaining attempts.
func Has(attempts int, p Part) bool {
	return int(p) < Stage(attempts)
}
