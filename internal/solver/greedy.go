package solver

import "svw.info/hanoi/internal/domain"

// GreedySolver computes one progressing move at a time by analyzing
// the current placement directly, so it works from any legally
// reachable position, not just ones produced by its own prior advice.
//
// Strategy: pick the destination peg (the non-start peg whose bottom
// disk is largest, parity-adjusted; the far peg when both are empty),
// then walk disk sizes from largest down. The first out-of-place disk
// that is topmost and movable goes to the current target; a buried or
// blocked disk instead retargets the walk at the one peg that is
// neither its own nor the old target.
type GreedySolver struct{}

func NewGreedySolver() *GreedySolver { return &GreedySolver{} }

// --- helpers shared by Step/Solve (in other files) ---

func bottomSize(st *domain.State, p domain.Peg) domain.Disk {
	if d, ok := st.Bottom(p); ok {
		return d
	}
	return 0
}

// destination picks the peg the largest disk should end up on.
func destination(st *domain.State) domain.Peg {
	near, far := domain.Others(st.Start())
	largest := domain.Disk(st.Disks())
	ln, lf := bottomSize(st, near), bottomSize(st, far)
	offStart := max(ln, lf)
	if offStart == 0 {
		return far
	}
	// The classic role swap: auxiliary and destination trade places
	// each time the remaining stack height's parity flips.
	if (ln == offStart) != ((largest-offStart)%2 == 1) {
		return near
	}
	return far
}

// plan walks sizes largest..1 and returns the next progressing move.
// The boolean is false when the position is already solved. nodes
// counts sizes examined.
func plan(st *domain.State) (mv domain.Move, ok bool, nodes int) {
	target := destination(st)
	for sz := st.Disks(); sz >= 1; sz-- {
		nodes++
		d := domain.Disk(sz)
		peg, found := st.Find(d)
		if !found || peg == target {
			continue
		}
		if top, has := st.TopOf(peg); has && top == d {
			mv := domain.Move{From: peg, To: target}
			if st.CanMove(mv) == nil {
				return mv, true, nodes
			}
		}
		target = domain.OtherPeg(peg, target)
	}
	return domain.Move{}, false, nodes
}
