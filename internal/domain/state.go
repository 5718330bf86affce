package domain

import (
	"errors"
	"fmt"
)

// State holds the live puzzle position: three ordered towers plus the
// designated start peg. All mutation goes through TryPush / TryPop /
// ApplyMove, which preserve the strictly-decreasing stack invariant or
// fail without touching anything.
type State struct {
	pegs  Pegs
	disks int
	start Peg
}

// New builds a State with disks 1..n stacked on the Left peg, largest
// at the bottom. n must be positive.
func New(n int) (*State, error) {
	return NewAt(n, Left)
}

// NewAt is New with an explicit start peg.
func NewAt(n int, start Peg) (*State, error) {
	if n <= 0 {
		return nil, errors.New("need a positive number of disks")
	}
	if !start.Valid() {
		return nil, fmt.Errorf("invalid start peg %v", start)
	}
	st := &State{disks: n, start: start}
	tower := make([]Disk, 0, n)
	for sz := n; sz >= 1; sz-- {
		tower = append(tower, Disk(sz))
	}
	st.pegs[start] = tower
	return st, nil
}

// Restore rebuilds a State from raw tower contents, rejecting anything
// that violates the stack invariants: each tower strictly decreasing
// bottom-to-top, and the disks across all towers exactly {1..N}.
func Restore(pegs Pegs, start Peg) (*State, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("invalid start peg %v", start)
	}
	n := 0
	for _, tower := range pegs {
		n += len(tower)
	}
	if n == 0 {
		return nil, errors.New("need a positive number of disks")
	}
	seen := make([]bool, n+1)
	for p, tower := range pegs {
		for i, d := range tower {
			if d < 1 || int(d) > n {
				return nil, fmt.Errorf("disk %d on %v peg outside 1..%d", d, Peg(p), n)
			}
			if seen[d] {
				return nil, fmt.Errorf("disk %d appears more than once", d)
			}
			seen[d] = true
			if i > 0 && tower[i-1] <= d {
				return nil, fmt.Errorf("disk %d rests on smaller disk %d on %v peg", d, tower[i-1], Peg(p))
			}
		}
	}
	st := &State{disks: n, start: start}
	for p := range pegs {
		st.pegs[p] = append([]Disk(nil), pegs[p]...)
	}
	return st, nil
}

// Disks returns the total number of disks N.
func (s *State) Disks() int { return s.disks }

// Start returns the designated start peg.
func (s *State) Start() Peg { return s.start }

// TopOf returns the top (smallest) disk on peg, if any.
func (s *State) TopOf(peg Peg) (Disk, bool) {
	t := s.pegs[peg]
	if len(t) == 0 {
		return 0, false
	}
	return t[len(t)-1], true
}

// Bottom returns the bottom (largest) disk on peg, if any.
func (s *State) Bottom(peg Peg) (Disk, bool) {
	t := s.pegs[peg]
	if len(t) == 0 {
		return 0, false
	}
	return t[0], true
}

// Tower returns a copy of peg's tower, bottom first. The copy is
// never nil, even for an empty peg.
func (s *State) Tower(peg Peg) []Disk {
	return append(make([]Disk, 0, len(s.pegs[peg])), s.pegs[peg]...)
}

// Snapshot returns a deep copy of all tower contents.
func (s *State) Snapshot() Pegs {
	var out Pegs
	for p := range s.pegs {
		out[p] = s.Tower(Peg(p))
	}
	return out
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	return &State{pegs: s.Snapshot(), disks: s.disks, start: s.start}
}

// Find returns the peg currently holding disk d.
func (s *State) Find(d Disk) (Peg, bool) {
	for p := range s.pegs {
		for _, held := range s.pegs[p] {
			if held == d {
				return Peg(p), true
			}
		}
	}
	return 0, false
}

// TryPush places disk on top of peg if peg is empty or its top disk is
// larger; otherwise it fails with *UnstableStackError and changes
// nothing.
func (s *State) TryPush(peg Peg, disk Disk) error {
	if top, ok := s.TopOf(peg); ok && top <= disk {
		return &UnstableStackError{Peg: peg, Disk: disk}
	}
	s.pegs[peg] = append(s.pegs[peg], disk)
	return nil
}

// TryPop removes and returns the top disk of peg, failing with
// *EmptyPegError when peg has no disks.
func (s *State) TryPop(peg Peg) (Disk, error) {
	t := s.pegs[peg]
	if len(t) == 0 {
		return 0, &EmptyPegError{Peg: peg}
	}
	d := t[len(t)-1]
	s.pegs[peg] = t[:len(t)-1]
	return d, nil
}

// CanMove reports whether mv would apply cleanly, returning the error
// ApplyMove would produce. Read-only.
func (s *State) CanMove(mv Move) error {
	from, ok := s.TopOf(mv.From)
	if !ok {
		return &EmptyFromError{Peg: mv.From}
	}
	if to, ok := s.TopOf(mv.To); ok && to <= from {
		return &UnstableStackError{Peg: mv.To, Disk: from}
	}
	return nil
}

// ApplyMove pops from mv.From and pushes onto mv.To as one atomic
// step. Any failure leaves the state exactly as it was.
func (s *State) ApplyMove(mv Move) (Outcome, error) {
	if err := s.CanMove(mv); err != nil {
		return Continue, err
	}
	d, err := s.TryPop(mv.From)
	if err != nil {
		return Continue, err
	}
	if err := s.TryPush(mv.To, d); err != nil {
		// Roll the disk back; the pop just made room for it.
		s.pegs[mv.From] = append(s.pegs[mv.From], d)
		return Continue, err
	}
	if s.IsSolved() {
		return Win, nil
	}
	return Continue, nil
}

// IsSolved reports whether the start peg is empty and all N disks sit
// on a single non-start peg.
func (s *State) IsSolved() bool {
	if len(s.pegs[s.start]) != 0 {
		return false
	}
	near, far := Others(s.start)
	return len(s.pegs[near]) == 0 || len(s.pegs[far]) == 0
}
