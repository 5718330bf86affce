package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// BFSSolver finds provably shortest solutions by breadth-first search
// over the full position space. Positions are encoded base 3, one trit
// per disk recording which peg holds it; a position is a goal when
// every disk sits on the same non-start peg. Exponential in the disk
// count, so it is capped — the greedy solver has no such limit.
type BFSSolver struct{}

func NewBFSSolver() *BFSSolver { return &BFSSolver{} }

// maxBFSDisks bounds the search space to 3^12 ≈ 531k positions.
const maxBFSDisks = 12

var errTooManyDisks = errors.New("too many disks for the bfs solver")

func encode(st *domain.State) int {
	key := 0
	for p := 0; p < 3; p++ {
		for _, d := range st.Tower(domain.Peg(p)) {
			key += p * pow3(int(d)-1)
		}
	}
	return key
}

func pow3(e int) int {
	out := 1
	for ; e > 0; e-- {
		out *= 3
	}
	return out
}

// tops extracts the smallest (topmost) disk on each peg, 0 when empty.
func tops(key, n int) [3]int {
	var out [3]int
	for d := n; d >= 1; d-- {
		out[key/pow3(d-1)%3] = d
	}
	return out
}

// uniformKey is the position with all n disks on peg p.
func uniformKey(n int, p domain.Peg) int {
	return int(p) * (pow3(n) - 1) / 2
}

// shortestPath runs BFS from st and returns the optimal move sequence
// to either goal position, plus the number of positions expanded.
func shortestPath(ctx context.Context, st *domain.State) ([]domain.Move, int, error) {
	n := st.Disks()
	if n > maxBFSDisks {
		return nil, 0, fmt.Errorf("%w: %d > %d", errTooManyDisks, n, maxBFSDisks)
	}
	near, far := domain.Others(st.Start())
	goalNear, goalFar := uniformKey(n, near), uniformKey(n, far)

	from := encode(st)
	if from == goalNear || from == goalFar {
		return nil, 0, domain.ErrAlreadyDone
	}

	type edge struct {
		prev int
		mv   domain.Move
	}
	came := map[int]edge{from: {prev: -1}}
	frontier := []int{from}
	nodes := 0

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, nodes, err
		}
		key := frontier[0]
		frontier = frontier[1:]
		nodes++
		t := tops(key, n)
		for a := 0; a < 3; a++ {
			if t[a] == 0 {
				continue
			}
			for b := 0; b < 3; b++ {
				if a == b || (t[b] != 0 && t[b] < t[a]) {
					continue
				}
				next := key + (b-a)*pow3(t[a]-1)
				if _, seen := came[next]; seen {
					continue
				}
				came[next] = edge{prev: key, mv: domain.Move{From: domain.Peg(a), To: domain.Peg(b)}}
				if next == goalNear || next == goalFar {
					var moves []domain.Move
					for at := next; at != from; at = came[at].prev {
						moves = append(moves, came[at].mv)
					}
					// reverse into forward order
					for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
						moves[i], moves[j] = moves[j], moves[i]
					}
					return moves, nodes, nil
				}
				frontier = append(frontier, next)
			}
		}
	}
	return nil, nodes, errors.New("no path to a solved position")
}

// Step applies the first move of a shortest solution from st.
func (s *BFSSolver) Step(ctx context.Context, st *domain.State) (domain.Move, domain.Outcome, ports.Stats, error) {
	start := time.Now()
	moves, nodes, err := shortestPath(ctx, st)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return domain.Move{}, domain.Continue, stats, err
	}
	out, err := st.ApplyMove(moves[0])
	stats.Duration = time.Since(start)
	return moves[0], out, stats, err
}

// Solve applies a full shortest solution to st.
func (s *BFSSolver) Solve(ctx context.Context, st *domain.State) ([]domain.Move, ports.Stats, error) {
	start := time.Now()
	moves, nodes, err := shortestPath(ctx, st)
	stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	for _, mv := range moves {
		if _, err := st.ApplyMove(mv); err != nil {
			return moves, stats, err
		}
	}
	stats.Duration = time.Since(start)
	return moves, stats, nil
}
