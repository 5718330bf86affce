package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"svw.info/hanoi/internal/domain"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	g := &domain.Game{
		ID:        "g1",
		Name:      "evening game",
		Disks:     3,
		Start:     domain.Left,
		Pegs:      domain.Pegs{{3}, {2, 1}, {}},
		Moves:     4,
		CreatedAt: 123,
	}
	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load(ctx, "g1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, g) {
		t.Fatalf("Load = %+v, want %+v", got, g)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Game{}); err == nil {
		t.Fatal("Save without ID should fail")
	}
}

func TestLoadMissingGame(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("want not-exist, got %v", err)
	}
}

// Finishing a game moves it from the active bucket to finished; the
// same ID must never list twice.
func TestResaveMovesBuckets(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()
	g := &domain.Game{ID: "g2", Disks: 2, Pegs: domain.Pegs{{2, 1}, {}, {}}, CreatedAt: 1}
	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	g.Solved = true
	g.Pegs = domain.Pegs{{}, {}, {2, 1}}
	if err := s.Save(ctx, g); err != nil {
		t.Fatalf("re-Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "active", "g2.json")); !os.IsNotExist(err) {
		t.Fatalf("stale active copy survived: %v", err)
	}
	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || !metas[0].Solved {
		t.Fatalf("List = %+v, want one finished game", metas)
	}
}

func TestListIncludesLegacyFlatFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()
	if err := s.Save(ctx, &domain.Game{ID: "new", Disks: 3, Pegs: domain.Pegs{{3, 2, 1}, {}, {}}, CreatedAt: 2}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	legacy, _ := json.Marshal(domain.Game{ID: "old", Disks: 4, CreatedAt: 1})
	if err := os.WriteFile(filepath.Join(dir, "old.json"), legacy, 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}
	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	ids := map[string]bool{}
	for _, m := range metas {
		ids[m.ID] = true
	}
	if !ids["new"] || !ids["old"] {
		t.Fatalf("List = %+v, want both new and old", metas)
	}
	if _, err := s.Load(ctx, "old"); err != nil {
		t.Fatalf("Load legacy failed: %v", err)
	}
}
