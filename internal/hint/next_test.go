package hint

import (
	"context"
	"testing"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/generator"
	"svw.info/hanoi/internal/solver"
)

// The hinter suggests exactly the move the incremental solver plays.
func TestHintMatchesSolverStep(t *testing.T) {
	g := generator.NewRandomScrambler()
	s := solver.NewGreedySolver()
	h := NewNext()
	for _, seed := range []int64{5, 13, 777} {
		st, _, err := g.Scramble(context.Background(), seed, 5, 20)
		if err != nil {
			t.Fatalf("Scramble failed: %v", err)
		}
		if st.IsSolved() {
			continue
		}
		want, found, err := h.Hint(context.Background(), st)
		if err != nil || !found {
			t.Fatalf("Hint: found=%v err=%v", found, err)
		}
		// Hint must not touch the state.
		before := st.Snapshot()
		got, _, _, err := s.Step(context.Background(), st)
		if err != nil {
			t.Fatalf("Step failed: %v", err)
		}
		if got != want {
			t.Fatalf("hint %+v, solver played %+v (position %v)", want, got, before)
		}
	}
}

func TestHintOnSolvedState(t *testing.T) {
	st, err := domain.Restore(domain.Pegs{{}, {3, 2, 1}, {}}, domain.Left)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	_, found, err := NewNext().Hint(context.Background(), st)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if found {
		t.Fatal("no hint should exist for a solved position")
	}
}

func TestHintIsReadOnly(t *testing.T) {
	st, err := domain.New(3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	before := st.Snapshot()
	if _, _, err := NewNext().Hint(context.Background(), st); err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	after := st.Snapshot()
	for p := range before {
		if len(before[p]) != len(after[p]) {
			t.Fatalf("Hint mutated peg %d", p)
		}
	}
}
