package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Scramble builds a fresh disks-high tower and applies moves random
// legal moves to it, never immediately undoing the previous move.
// moves == 0 yields the untouched starting position.
func (g *RandomScrambler) Scramble(ctx context.Context, seed int64, disks, moves int) (*domain.State, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	st, err := domain.NewAt(disks, g.Start)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	nodes := 0
	prev := domain.Move{From: -1, To: -1}
	for i := 0; i < moves; i++ {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		candidates := legalMoves(st, prev)
		nodes += len(candidates)
		if len(candidates) == 0 {
			break
		}
		mv := candidates[rng.Intn(len(candidates))]
		if _, err := st.ApplyMove(mv); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		prev = mv
	}
	return st, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// legalMoves lists every applicable move except the exact inverse of
// prev, which would walk the scramble in place.
func legalMoves(st *domain.State, prev domain.Move) []domain.Move {
	out := make([]domain.Move, 0, 6)
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			if a == b {
				continue
			}
			mv := domain.Move{From: domain.Peg(a), To: domain.Peg(b)}
			if mv.From == prev.To && mv.To == prev.From {
				continue
			}
			if st.CanMove(mv) == nil {
				out = append(out, mv)
			}
		}
	}
	return out
}
