package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/hanoi/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func statusDir(solved bool) string {
	if solved {
		return "finished"
	}
	return "active"
}

func (s *FS) pathFor(id string, solved bool) string {
	return filepath.Join(s.dir, statusDir(solved), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, g *domain.Game) error {
	if g == nil || g.ID == "" {
		return errors.New("invalid game: missing ID")
	}
	target := s.pathFor(g.ID, g.Solved)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	// A game that was active last save may now be finished; drop the
	// stale copy so the same ID never lists twice.
	_ = os.Remove(s.pathFor(g.ID, !g.Solved))
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Game, error) {
	candidates := []string{
		filepath.Join(s.dir, "active", id+".json"),
		filepath.Join(s.dir, "finished", id+".json"),
		filepath.Join(s.dir, id+".json"), // legacy flat layout
	}
	var data []byte
	for _, path := range candidates {
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Game
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.GameMeta, error) {
	var out []domain.GameMeta
	buckets := []string{
		filepath.Join(s.dir, "active"),
		filepath.Join(s.dir, "finished"),
		s.dir, // legacy flat layout
	}
	for _, dir := range buckets {
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if !strings.HasSuffix(name, ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			var g domain.Game
			if err := json.Unmarshal(data, &g); err != nil || g.ID == "" {
				continue
			}
			out = append(out, domain.GameMeta{
				ID:        g.ID,
				Name:      g.Name,
				Disks:     g.Disks,
				Solved:    g.Solved,
				CreatedAt: g.CreatedAt,
			})
		}
	}
	return out, nil
}
