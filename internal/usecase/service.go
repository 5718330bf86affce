package usecase

import (
	"context"
	"errors"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Hinter    ports.Hinter
	Scrambler ports.Scrambler
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, h ports.Hinter, sc ports.Scrambler, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Hinter: h, Scrambler: sc, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Apply executes a player move. Pure domain work, so no port backs it.
func (u *Service) Apply(ctx context.Context, st *domain.State, mv domain.Move) (domain.Outcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.Continue, err
	}
	return st.ApplyMove(mv)
}

func (u *Service) Step(ctx context.Context, st *domain.State) (domain.Move, domain.Outcome, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Move{}, domain.Continue, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Step(ctx, st)
}

func (u *Service) Solve(ctx context.Context, st *domain.State) ([]domain.Move, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, st)
}

func (u *Service) Hint(ctx context.Context, st *domain.State) (domain.Move, bool, error) {
	if u.Hinter == nil {
		return domain.Move{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, st)
}

func (u *Service) Scramble(ctx context.Context, seed int64, disks, moves int) (*domain.State, ports.Stats, error) {
	if u.Scrambler == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Scrambler.Scramble(ctx, seed, disks, moves)
}

func (u *Service) Validate(ctx context.Context, pegs domain.Pegs) (bool, []domain.Violation, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, pegs)
}

// Persistence
func (u *Service) Save(ctx context.Context, g *domain.Game) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, g)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Game, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.GameMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
