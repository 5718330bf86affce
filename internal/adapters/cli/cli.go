package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/TwiN/go-color"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/usecase"
)

// REPL drives a game over a line-oriented command stream.
type REPL struct {
	UC  *usecase.Service
	In  io.Reader
	Out io.Writer

	st    *domain.State
	moves int
}

func New(uc *usecase.Service, in io.Reader, out io.Writer) *REPL {
	return &REPL{UC: uc, In: in, Out: out}
}

var diskColors = []string{
	color.Red,
	color.Green,
	color.Blue,
	color.Yellow,
	color.Purple,
	color.Cyan,
}

// Run starts a game with disks disks and processes commands until quit
// or EOF.
func (r *REPL) Run(ctx context.Context, disks int) error {
	st, err := domain.New(disks)
	if err != nil {
		return err
	}
	r.st = st
	r.moves = 0
	r.render()
	fmt.Fprintln(r.Out, `Type "help" for commands.`)

	sc := bufio.NewScanner(r.In)
	for {
		fmt.Fprint(r.Out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		fields := strings.Fields(strings.ToLower(sc.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit", "q":
			return nil
		case "help", "h", "?":
			r.help()
		case "show", "print", "p":
			r.render()
		case "new":
			r.cmdNew(fields[1:])
		case "scramble":
			r.cmdScramble(ctx, fields[1:])
		case "move", "m":
			r.cmdMove(ctx, fields[1:])
		case "auto", "a":
			r.cmdAuto(ctx)
		case "solve":
			r.cmdSolve(ctx)
		case "hint":
			r.cmdHint(ctx)
		case "save":
			r.cmdSave(ctx, fields[1:])
		case "load":
			r.cmdLoad(ctx, fields[1:])
		case "list":
			r.cmdList(ctx)
		default:
			fmt.Fprintf(r.Out, "unknown command %q; try help\n", fields[0])
		}
	}
}

func (r *REPL) help() {
	fmt.Fprint(r.Out, `commands:
  move <from> <to>   move the top disk (pegs: left/center/right or l/c/r)
  auto               let the solver make one move
  solve              let the solver finish the game
  hint               show the solver's next move without playing it
  new <n>            restart with n disks
  scramble <n> <k>   restart with n disks after k random legal moves
  save [name]        persist the current game
  load <id>          restore a saved game
  list               list saved games
  show               reprint the towers
  quit               leave the game
`)
}

func parsePeg(s string) (domain.Peg, bool) {
	switch s {
	case "left", "l":
		return domain.Left, true
	case "center", "c", "middle", "m":
		return domain.Center, true
	case "right", "r":
		return domain.Right, true
	}
	return 0, false
}

func (r *REPL) render() {
	n := r.st.Disks()
	towers := [3][]domain.Disk{
		r.st.Tower(domain.Left),
		r.st.Tower(domain.Center),
		r.st.Tower(domain.Right),
	}
	width := 2*n + 1
	for level := n - 1; level >= 0; level-- {
		for _, tower := range towers {
			if level < len(tower) {
				fmt.Fprint(r.Out, diskCell(tower[level], width))
			} else {
				fmt.Fprint(r.Out, pad("|", width))
			}
			fmt.Fprint(r.Out, " ")
		}
		fmt.Fprintln(r.Out)
	}
	for _, label := range []string{"left", "center", "right"} {
		fmt.Fprint(r.Out, pad(label, width), " ")
	}
	fmt.Fprintf(r.Out, "  moves: %d\n", r.moves)
}

// diskCell draws a disk as a colored bar proportional to its size.
func diskCell(d domain.Disk, width int) string {
	bar := strings.Repeat("=", 2*int(d)-1)
	c := diskColors[(int(d)-1)%len(diskColors)]
	return strings.Replace(pad(bar, width), bar, color.Ize(c, bar), 1)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func (r *REPL) cmdNew(args []string) {
	n := r.st.Disks()
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(r.Out, "new wants a disk count")
			return
		}
		n = v
	}
	st, err := domain.New(n)
	if err != nil {
		fmt.Fprintln(r.Out, err)
		return
	}
	r.st, r.moves = st, 0
	r.render()
}

func (r *REPL) cmdScramble(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(r.Out, "scramble wants a disk count and a move count")
		return
	}
	n, err1 := strconv.Atoi(args[0])
	k, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Fprintln(r.Out, "scramble wants two numbers")
		return
	}
	st, _, err := r.UC.Scramble(ctx, time.Now().UnixNano(), n, k)
	if err != nil {
		fmt.Fprintln(r.Out, err)
		return
	}
	r.st, r.moves = st, 0
	r.render()
}

func (r *REPL) cmdMove(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.Out, "move wants a source and a destination peg")
		return
	}
	from, okF := parsePeg(args[0])
	to, okT := parsePeg(args[1])
	if !okF || !okT {
		fmt.Fprintln(r.Out, "pegs are left, center or right")
		return
	}
	out, err := r.UC.Apply(ctx, r.st, domain.Move{From: from, To: to})
	if err != nil {
		fmt.Fprintln(r.Out, color.Ize(color.Red, err.Error()))
		return
	}
	r.moves++
	r.render()
	if out == domain.Win {
		fmt.Fprintln(r.Out, color.Ize(color.Green, "You win!"))
	}
}

func (r *REPL) cmdAuto(ctx context.Context) {
	mv, out, _, err := r.UC.Step(ctx, r.st)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyDone) {
			fmt.Fprintln(r.Out, "already solved")
			return
		}
		fmt.Fprintln(r.Out, color.Ize(color.Red, err.Error()))
		return
	}
	r.moves++
	fmt.Fprintf(r.Out, "auto: %v -> %v\n", mv.From, mv.To)
	r.render()
	if out == domain.Win {
		fmt.Fprintln(r.Out, color.Ize(color.Green, "Solved!"))
	}
}

func (r *REPL) cmdSolve(ctx context.Context) {
	moves, stats, err := r.UC.Solve(ctx, r.st)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyDone) {
			fmt.Fprintln(r.Out, "already solved")
			return
		}
		fmt.Fprintln(r.Out, color.Ize(color.Red, err.Error()))
		return
	}
	for _, mv := range moves {
		fmt.Fprintf(r.Out, "  %v -> %v\n", mv.From, mv.To)
	}
	r.moves += len(moves)
	r.render()
	fmt.Fprintln(r.Out, color.Ize(color.Green,
		fmt.Sprintf("Solved in %d moves (%v)", len(moves), stats.Duration.Round(time.Microsecond))))
}

func (r *REPL) cmdHint(ctx context.Context) {
	mv, found, err := r.UC.Hint(ctx, r.st)
	if err != nil {
		fmt.Fprintln(r.Out, err)
		return
	}
	if !found {
		fmt.Fprintln(r.Out, "already solved")
		return
	}
	fmt.Fprintf(r.Out, "try: move %v %v\n", mv.From, mv.To)
}

func (r *REPL) cmdSave(ctx context.Context, args []string) {
	name := strings.Join(args, " ")
	g := &domain.Game{
		ID:        strconv.FormatInt(time.Now().UnixNano(), 10),
		Name:      name,
		Disks:     r.st.Disks(),
		Start:     r.st.Start(),
		Pegs:      r.st.Snapshot(),
		Moves:     r.moves,
		Solved:    r.st.IsSolved(),
		CreatedAt: time.Now().UnixNano(),
	}
	if err := r.UC.Save(ctx, g); err != nil {
		fmt.Fprintln(r.Out, err)
		return
	}
	fmt.Fprintf(r.Out, "saved as %s\n", g.ID)
}

func (r *REPL) cmdLoad(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.Out, "load wants a game id")
		return
	}
	g, err := r.UC.Load(ctx, args[0])
	if err != nil {
		fmt.Fprintln(r.Out, err)
		return
	}
	st, err := domain.Restore(g.Pegs, g.Start)
	if err != nil {
		fmt.Fprintf(r.Out, "saved game is corrupt: %v\n", err)
		return
	}
	r.st, r.moves = st, g.Moves
	r.render()
}

func (r *REPL) cmdList(ctx context.Context) {
	gs, err := r.UC.List(ctx)
	if err != nil {
		fmt.Fprintln(r.Out, err)
		return
	}
	if len(gs) == 0 {
		fmt.Fprintln(r.Out, "no saved games")
		return
	}
	for _, g := range gs {
		status := "active"
		if g.Solved {
			status = "finished"
		}
		fmt.Fprintf(r.Out, "  %s  %d disks  %s  %s\n", g.ID, g.Disks, status, g.Name)
	}
}
