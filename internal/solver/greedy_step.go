package solver

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Step applies the single next progressing move to st.
func (s *GreedySolver) Step(ctx context.Context, st *domain.State) (domain.Move, domain.Outcome, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.Move{}, domain.Continue, ports.Stats{}, err
	}
	mv, ok, nodes := plan(st)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		return domain.Move{}, domain.Continue, stats, domain.ErrAlreadyDone
	}
	out, err := st.ApplyMove(mv)
	stats.Duration = time.Since(start)
	return mv, out, stats, err
}
