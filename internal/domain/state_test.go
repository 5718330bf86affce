package domain

import (
	"errors"
	"reflect"
	"testing"
)

func mustNew(t *testing.T, n int) *State {
	t.Helper()
	st, err := New(n)
	if err != nil {
		t.Fatalf("New(%d) failed: %v", n, err)
	}
	return st
}

func TestNewRejectsZeroDisks(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("New(0) should fail")
	}
	if _, err := New(-2); err == nil {
		t.Fatal("New(-2) should fail")
	}
}

func TestInitialLayout(t *testing.T) {
	st := mustNew(t, 4)
	want := []Disk{4, 3, 2, 1}
	if got := st.Tower(Left); !reflect.DeepEqual(got, want) {
		t.Fatalf("left tower = %v, want %v", got, want)
	}
	for _, p := range []Peg{Center, Right} {
		if got := st.Tower(p); len(got) != 0 {
			t.Fatalf("%v tower = %v, want empty", p, got)
		}
	}
	if top, ok := st.TopOf(Left); !ok || top != 1 {
		t.Fatalf("TopOf(Left) = %v, %v; want 1, true", top, ok)
	}
	if st.IsSolved() {
		t.Fatal("fresh game must not be solved")
	}
}

// The scripted three-disk opening: two legal moves, a legal stack of 1
// on 2, then an illegal 3-on-1 that must leave everything untouched.
func TestScriptedThreeDiskGame(t *testing.T) {
	st := mustNew(t, 3)

	if out, err := st.ApplyMove(Move{From: Left, To: Right}); err != nil || out != Continue {
		t.Fatalf("left->right: out=%v err=%v", out, err)
	}
	if out, err := st.ApplyMove(Move{From: Left, To: Center}); err != nil || out != Continue {
		t.Fatalf("left->center: out=%v err=%v", out, err)
	}
	if out, err := st.ApplyMove(Move{From: Right, To: Center}); err != nil || out != Continue {
		t.Fatalf("right->center (1 onto 2): out=%v err=%v", out, err)
	}
	want := Pegs{{3}, {2, 1}, {}}
	if got := st.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("position = %v, want %v", got, want)
	}

	before := st.Snapshot()
	_, err := st.ApplyMove(Move{From: Left, To: Center})
	var unstable *UnstableStackError
	if !errors.As(err, &unstable) {
		t.Fatalf("3 onto 1 should be unstable, got %v", err)
	}
	if unstable.Peg != Center || unstable.Disk != 3 {
		t.Fatalf("unstable = %+v, want peg=center disk=3", unstable)
	}
	if got := st.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Fatalf("failed move mutated state: %v -> %v", before, got)
	}
}

func TestApplyMoveFromEmptyPeg(t *testing.T) {
	st := mustNew(t, 3)
	before := st.Snapshot()
	_, err := st.ApplyMove(Move{From: Right, To: Center})
	var empty *EmptyFromError
	if !errors.As(err, &empty) {
		t.Fatalf("want EmptyFromError, got %v", err)
	}
	if empty.Peg != Right {
		t.Fatalf("empty.Peg = %v, want right", empty.Peg)
	}
	if got := st.Snapshot(); !reflect.DeepEqual(got, before) {
		t.Fatalf("failed move mutated state: %v -> %v", before, got)
	}
}

func TestTryPopEmptyPeg(t *testing.T) {
	st := mustNew(t, 1)
	_, err := st.TryPop(Center)
	var empty *EmptyPegError
	if !errors.As(err, &empty) {
		t.Fatalf("want EmptyPegError, got %v", err)
	}
}

func TestIsSolved(t *testing.T) {
	cases := []struct {
		name   string
		pegs   Pegs
		start  Peg
		solved bool
	}{
		{"all on right", Pegs{{}, {}, {3, 2, 1}}, Left, true},
		{"all on center", Pegs{{}, {3, 2, 1}, {}}, Left, true},
		{"split", Pegs{{}, {3}, {2, 1}}, Left, false},
		{"still on start", Pegs{{3, 2, 1}, {}, {}}, Left, false},
		{"one left behind", Pegs{{1}, {}, {3, 2}}, Left, false},
		{"center start done", Pegs{{3, 2, 1}, {}, {}}, Center, true},
		{"center start not done", Pegs{{}, {3, 2, 1}, {}}, Center, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := Restore(tc.pegs, tc.start)
			if err != nil {
				t.Fatalf("Restore failed: %v", err)
			}
			if got := st.IsSolved(); got != tc.solved {
				t.Fatalf("IsSolved = %v, want %v", got, tc.solved)
			}
		})
	}
}

func TestRestoreRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		pegs Pegs
	}{
		{"empty puzzle", Pegs{{}, {}, {}}},
		{"duplicate disk", Pegs{{2, 1}, {1}, {}}},
		{"missing disk", Pegs{{3, 1}, {}, {}}},
		{"increasing stack", Pegs{{1, 2}, {}, {}}},
		{"size out of range", Pegs{{9, 1}, {}, {}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Restore(tc.pegs, Left); err == nil {
				t.Fatalf("Restore(%v) should fail", tc.pegs)
			}
		})
	}
}

func TestRestoreCopiesInput(t *testing.T) {
	pegs := Pegs{{2, 1}, {}, {}}
	st, err := Restore(pegs, Left)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	pegs[0][0] = 99
	if got := st.Tower(Left); got[0] != 2 {
		t.Fatalf("Restore aliased caller slices: %v", got)
	}
}

func TestOtherPeg(t *testing.T) {
	cases := []struct{ a, b, want Peg }{
		{Left, Center, Right},
		{Center, Left, Right},
		{Left, Right, Center},
		{Right, Left, Center},
		{Center, Right, Left},
		{Right, Center, Left},
	}
	for _, tc := range cases {
		if got := OtherPeg(tc.a, tc.b); got != tc.want {
			t.Fatalf("OtherPeg(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatal("OtherPeg(p, p) should panic")
		}
	}()
	OtherPeg(Left, Left)
}

func TestWinOnLastMove(t *testing.T) {
	st := mustNew(t, 1)
	out, err := st.ApplyMove(Move{From: Left, To: Right})
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if out != Win {
		t.Fatalf("out = %v, want win", out)
	}
	if !st.IsSolved() {
		t.Fatal("state should be solved")
	}
}
