package ports

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver advances a position toward the solved configuration.
type Solver interface {
	// Step applies exactly one progressing move to st and returns it.
	// A solved st yields domain.ErrAlreadyDone and no mutation.
	Step(ctx context.Context, st *domain.State) (domain.Move, domain.Outcome, Stats, error)
	// Solve steps st all the way to a win, returning the moves applied.
	Solve(ctx context.Context, st *domain.State) ([]domain.Move, Stats, error)
}

// Hinter suggests the next progressing move without applying it.
type Hinter interface {
	Hint(ctx context.Context, st *domain.State) (domain.Move, bool, error)
}

// Scrambler produces a legally-reachable position by applying random
// legal moves to a fresh tower.
type Scrambler interface {
	Scramble(ctx context.Context, seed int64, disks, moves int) (*domain.State, Stats, error)
}

// Validator performs fast invariant checks on raw tower contents.
type Validator interface {
	Validate(ctx context.Context, pegs domain.Pegs) (ok bool, violations []domain.Violation, err error)
}

// Storage persists and retrieves games as JSON.
type Storage interface {
	Save(ctx context.Context, g *domain.Game) error
	Load(ctx context.Context, id string) (*domain.Game, error)
	List(ctx context.Context) ([]domain.GameMeta, error)
}
