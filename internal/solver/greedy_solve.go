package solver

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Solve steps st until it is solved, returning the moves applied in
// order. st is mutated to the solved position.
func (s *GreedySolver) Solve(ctx context.Context, st *domain.State) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	var moves []domain.Move
	nodes := 0
	for {
		if err := ctx.Err(); err != nil {
			return moves, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		mv, ok, n := plan(st)
		nodes += n
		if !ok {
			if len(moves) == 0 {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, domain.ErrAlreadyDone
			}
			return moves, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		out, err := st.ApplyMove(mv)
		if err != nil {
			return moves, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		moves = append(moves, mv)
		if out == domain.Win {
			return moves, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
	}
}
