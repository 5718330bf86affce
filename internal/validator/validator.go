package validator

import (
	"context"

	"svw.info/hanoi/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate checks raw tower contents against the two puzzle
// invariants: strictly decreasing sizes bottom-to-top on every peg,
// and the disks across all pegs forming exactly {1..N}.
func (v *FastValidator) Validate(ctx context.Context, pegs domain.Pegs) (bool, []domain.Violation, error) {
	viol := make([]domain.Violation, 0, 4)
	n := 0
	for _, tower := range pegs {
		n += len(tower)
	}
	counts := make([]int, n+1)
	for p, tower := range pegs {
		for i, d := range tower {
			if d < 1 || int(d) > n {
				viol = append(viol, domain.Violation{
					Peg: domain.Peg(p), Disk: d, Reason: "size out of range",
				})
				continue
			}
			counts[d]++
			if counts[d] == 2 {
				viol = append(viol, domain.Violation{
					Peg: domain.Peg(p), Disk: d, Reason: "duplicate disk",
				})
			}
			if i > 0 && tower[i-1] <= d {
				viol = append(viol, domain.Violation{
					Peg: domain.Peg(p), Disk: d, Reason: "rests on a smaller disk",
				})
			}
		}
	}
	for d := 1; d <= n; d++ {
		if counts[d] == 0 {
			viol = append(viol, domain.Violation{
				Disk: domain.Disk(d), Reason: "missing disk",
			})
		}
	}
	return len(viol) == 0, viol, nil
}
