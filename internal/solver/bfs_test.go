package solver

import (
	"context"
	"errors"
	"testing"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/generator"
)

func TestBFSOptimalFromStart(t *testing.T) {
	s := NewBFSSolver()
	for n := 1; n <= 6; n++ {
		st, err := domain.New(n)
		if err != nil {
			t.Fatalf("New(%d) failed: %v", n, err)
		}
		moves, stats, err := s.Solve(context.Background(), st)
		if err != nil {
			t.Fatalf("n=%d: Solve failed: %v", n, err)
		}
		want := 1<<uint(n) - 1
		if len(moves) != want {
			t.Fatalf("n=%d: %d moves, want optimal %d", n, len(moves), want)
		}
		if !st.IsSolved() {
			t.Fatalf("n=%d: final state not solved", n)
		}
		t.Logf("n=%d: %d moves, %d positions expanded (%v)", n, len(moves), stats.Nodes, stats.Duration)
	}
}

// BFS solutions are shortest, so they never beat the greedy solver by
// a negative margin.
func TestBFSNoLongerThanGreedy(t *testing.T) {
	g := generator.NewRandomScrambler()
	bfs := NewBFSSolver()
	greedy := NewGreedySolver()
	for _, seed := range []int64{3, 11, 2024} {
		st, _, err := g.Scramble(context.Background(), seed, 5, 30)
		if err != nil {
			t.Fatalf("Scramble failed: %v", err)
		}
		if st.IsSolved() {
			continue
		}
		short, _, err := bfs.Solve(context.Background(), st.Clone())
		if err != nil {
			t.Fatalf("seed=%d: bfs failed: %v", seed, err)
		}
		long, _, err := greedy.Solve(context.Background(), st.Clone())
		if err != nil {
			t.Fatalf("seed=%d: greedy failed: %v", seed, err)
		}
		if len(short) > len(long) {
			t.Fatalf("seed=%d: bfs %d moves > greedy %d moves", seed, len(short), len(long))
		}
	}
}

func TestBFSStepMakesLegalProgress(t *testing.T) {
	st, err := domain.Restore(domain.Pegs{{2}, {}, {3, 1}}, domain.Left)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	s := NewBFSSolver()
	for i := 0; i < 1<<3; i++ {
		_, out, _, err := s.Step(context.Background(), st)
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		if out == domain.Win {
			return
		}
	}
	t.Fatal("bfs did not finish a 3-disk position in 8 steps")
}

func TestBFSAlreadyDone(t *testing.T) {
	st, err := domain.Restore(domain.Pegs{{}, {}, {2, 1}}, domain.Left)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	s := NewBFSSolver()
	if _, _, _, err := s.Step(context.Background(), st); !errors.Is(err, domain.ErrAlreadyDone) {
		t.Fatalf("want ErrAlreadyDone, got %v", err)
	}
}

func TestBFSRejectsOversizedPuzzles(t *testing.T) {
	st, err := domain.New(maxBFSDisks + 1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s := NewBFSSolver()
	if _, _, err := s.Solve(context.Background(), st); err == nil {
		t.Fatal("Solve should refuse puzzles above the bfs disk cap")
	}
}

func TestEncodeDecodeTops(t *testing.T) {
	st, err := domain.Restore(domain.Pegs{{3}, {2}, {1}}, domain.Left)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	key := encode(st)
	top := tops(key, 3)
	if top[0] != 3 || top[1] != 2 || top[2] != 1 {
		t.Fatalf("tops = %v, want [3 2 1]", top)
	}
}
