package domain

import "encoding/json"

// Disk is a puzzle piece identified by its size. Sizes are unique
// within a puzzle and run 1..N.
type Disk uint8

// Move requests a transfer of the top disk from one peg to another.
// A Move carries no legality guarantee; legality is checked against a
// State when the move is applied.
type Move struct {
	From Peg `json:"from"`
	To   Peg `json:"to"`
}

// Pegs holds the raw tower contents, indexed by Peg. Index 0 of each
// slice is the bottom of the tower.
type Pegs [3][]Disk

// encoding/json renders uint8 slices as base64, so towers go over the
// wire as plain integer arrays instead.
func (p Pegs) MarshalJSON() ([]byte, error) {
	var out [3][]int
	for i, tower := range p {
		out[i] = make([]int, len(tower))
		for j, d := range tower {
			out[i][j] = int(d)
		}
	}
	return json.Marshal(out)
}

func (p *Pegs) UnmarshalJSON(b []byte) error {
	var in [3][]int
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	for i, tower := range in {
		p[i] = make([]Disk, len(tower))
		for j, d := range tower {
			p[i][j] = Disk(d)
		}
	}
	return nil
}

// Violation pinpoints an invariant breach in raw tower contents.
type Violation struct {
	Peg    Peg    `json:"peg"`
	Disk   Disk   `json:"disk"`
	Reason string `json:"reason"`
}

// Game is a persisted puzzle position with metadata.
type Game struct {
	ID        string `json:"id,omitempty"`
	Disks     int    `json:"disks"`
	Start     Peg    `json:"start"`
	Pegs      Pegs   `json:"pegs"`
	Moves     int    `json:"moves,omitempty"`
	Solved    bool   `json:"solved,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// GameMeta is a lightweight listing entry.
type GameMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Disks     int    `json:"disks"`
	Solved    bool   `json:"solved"`
	CreatedAt int64  `json:"createdAt"`
}
