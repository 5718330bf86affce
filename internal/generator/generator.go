package generator

import "svw.info/hanoi/internal/domain"

// RandomScrambler produces legally-reachable positions by random play
// from a fresh tower, so every emitted position can actually occur in
// a game.
type RandomScrambler struct {
	Start domain.Peg
}

// NewRandomScrambler wires a scrambler that starts games on the Left peg.
func NewRandomScrambler() *RandomScrambler {
	return &RandomScrambler{Start: domain.Left}
}

// Note: The Scramble method is implemented in scramble.go.
