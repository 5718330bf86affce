package hint

import (
	"context"

	"svw.info/hanoi/internal/domain"
)

// Next implements a minimal Hinter that suggests the move the
// incremental solver would make, without applying it.
type Next struct{}

func NewNext() *Next { return &Next{} }

// Hint returns the next progressing move, or found == false when the
// position is already solved.
func (h *Next) Hint(ctx context.Context, st *domain.State) (domain.Move, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Move{}, false, err
	}
	target := pickDestination(st)
	for sz := st.Disks(); sz >= 1; sz-- {
		d := domain.Disk(sz)
		peg, found := st.Find(d)
		if !found || peg == target {
			continue
		}
		if top, has := st.TopOf(peg); has && top == d {
			mv := domain.Move{From: peg, To: target}
			if st.CanMove(mv) == nil {
				return mv, true, nil
			}
		}
		target = domain.OtherPeg(peg, target)
	}
	return domain.Move{}, false, nil
}

// pickDestination mirrors the solver's destination rule locally.
func pickDestination(st *domain.State) domain.Peg {
	near, far := domain.Others(st.Start())
	largest := domain.Disk(st.Disks())
	ln := bottomSize(st, near)
	lf := bottomSize(st, far)
	offStart := max(ln, lf)
	if offStart == 0 {
		return far
	}
	if (ln == offStart) != ((largest-offStart)%2 == 1) {
		return near
	}
	return far
}

func bottomSize(st *domain.State, p domain.Peg) domain.Disk {
	if d, ok := st.Bottom(p); ok {
		return d
	}
	return 0
}
