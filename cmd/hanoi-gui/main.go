package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/solver"
)

const (
	diskH     = 20
	diskUnit  = 20
	gap       = 5
	statusBar = 24
)

var diskPalette = []color.RGBA{
	{R: 0xd6, G: 0x4a, B: 0x4a, A: 0xff},
	{R: 0x4a, G: 0xa8, B: 0x5c, A: 0xff},
	{R: 0x4a, G: 0x6f, B: 0xd6, A: 0xff},
	{R: 0xd6, G: 0xb1, B: 0x4a, A: 0xff},
	{R: 0x9a, G: 0x4a, B: 0xd6, A: 0xff},
	{R: 0x4a, G: 0xc2, B: 0xd6, A: 0xff},
}

type game struct {
	st       *domain.State
	disks    int
	auto     *solver.GreedySolver
	selected domain.Peg
	hasSel   bool
	status   string
	moves    int
	w, h     int
}

func newGame(disks int) *game {
	st, err := domain.New(disks)
	if err != nil {
		log.Fatal(err)
	}
	colW := disks*diskUnit + 2*gap
	return &game{
		st:     st,
		disks:  disks,
		auto:   solver.NewGreedySolver(),
		status: "click source peg, then destination (A=auto, R=reset, Q=quit)",
		w:      3 * colW,
		h:      (diskH+gap)*disks + gap + statusBar,
	}
}

func (g *game) pegAt(x, y int) (domain.Peg, bool) {
	if x < 0 || x >= g.w || y < statusBar || y >= g.h {
		return 0, false
	}
	return domain.Peg(x / (g.w / 3)), true
}

func (g *game) reset() {
	st, err := domain.New(g.disks)
	if err != nil {
		log.Fatal(err)
	}
	g.st = st
	g.hasSel = false
	g.moves = 0
	g.status = "reset"
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		mv, out, _, err := g.auto.Step(context.Background(), g.st)
		switch {
		case errors.Is(err, domain.ErrAlreadyDone):
			g.status = "already solved"
		case err != nil:
			g.status = err.Error()
		default:
			g.moves++
			g.status = fmt.Sprintf("auto: %v -> %v", mv.From, mv.To)
			if out == domain.Win {
				g.status = fmt.Sprintf("solved in %d moves! (R to restart)", g.moves)
			}
		}
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		peg, ok := g.pegAt(ebiten.CursorPosition())
		if !ok {
			g.hasSel = false
			return nil
		}
		if !g.hasSel {
			if _, has := g.st.TopOf(peg); has {
				g.selected = peg
				g.hasSel = true
				g.status = fmt.Sprintf("moving from %v...", peg)
			}
			return nil
		}
		from := g.selected
		g.hasSel = false
		if from == peg {
			g.status = "move canceled"
			return nil
		}
		out, err := g.st.ApplyMove(domain.Move{From: from, To: peg})
		if err != nil {
			g.status = err.Error()
			return nil
		}
		g.moves++
		g.status = fmt.Sprintf("moved %v -> %v", from, peg)
		if out == domain.Win {
			g.status = fmt.Sprintf("you win in %d moves! (R to restart)", g.moves)
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	colW := float32(g.w) / 3
	for p := 0; p < 3; p++ {
		cx := colW*float32(p) + colW/2
		// pole
		vector.DrawFilledRect(screen, cx-2, statusBar, 4, float32(g.h-statusBar), color.RGBA{A: 0x30}, false)
		if g.hasSel && domain.Peg(p) == g.selected {
			vector.DrawFilledRect(screen, colW*float32(p), statusBar, colW, float32(g.h-statusBar), color.RGBA{R: 0xee, G: 0xee, B: 0x99, A: 0x60}, false)
		}
		tower := g.st.Tower(domain.Peg(p))
		for i, d := range tower {
			w := float32(d) * diskUnit
			x := cx - w/2
			y := float32(g.h) - float32((diskH+gap)*(i+1))
			vector.DrawFilledRect(screen, x, y, w, diskH, diskPalette[(int(d)-1)%len(diskPalette)], false)
		}
	}
	ebitenutil.DebugPrintAt(screen, g.status, 4, 4)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

func main() {
	disks := flag.Int("disks", 3, "number of disks")
	flag.Parse()
	if *disks <= 0 {
		log.Fatal("need a positive number of disks")
	}
	g := newGame(*disks)
	ebiten.SetWindowSize(g.w*2, g.h*2)
	ebiten.SetWindowTitle("Hanoi")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
