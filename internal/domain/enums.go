package domain

import "fmt"

// Peg identifies one of the three fixed disk slots.
type Peg int

const (
	Left Peg = iota
	Center
	Right
)

func (p Peg) String() string {
	switch p {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Peg(%d)", int(p))
}

// Valid reports whether p is one of the three known pegs.
func (p Peg) Valid() bool { return p >= Left && p <= Right }

// OtherPeg maps two distinct pegs to the remaining third peg.
// Calling it with a == b is a contract violation and panics.
func OtherPeg(a, b Peg) Peg {
	switch {
	case (a == Left && b == Center) || (a == Center && b == Left):
		return Right
	case (a == Left && b == Right) || (a == Right && b == Left):
		return Center
	case (a == Center && b == Right) || (a == Right && b == Center):
		return Left
	}
	panic(fmt.Sprintf("domain: OtherPeg(%v, %v) needs two distinct pegs", a, b))
}

// Others returns the two non-start pegs in cyclic order from start:
// the "near" peg first, the "far" peg second. For a Left start that is
// (Center, Right), preserving the conventional orientation.
func Others(start Peg) (near, far Peg) {
	switch start {
	case Left:
		return Center, Right
	case Center:
		return Right, Left
	default:
		return Left, Center
	}
}

// Outcome is the result of a successful move.
type Outcome int

const (
	// Continue means the move applied but the puzzle is not solved.
	Continue Outcome = iota
	// Win means the move applied and the puzzle is now solved.
	Win
)

func (o Outcome) String() string {
	if o == Win {
		return "win"
	}
	return "continue"
}
