// Package visual implements the optional `--visual` viewport: an
// ebiten.Game that steps a gridloc.Interpreter at a fixed rate and draws
// the non-zero cells near the active pointer as a scrolling grid of
// colored cells, with the pointer itself highlighted. Modeled on the
// teacher pack's own ebiten.Game front end (smasonuk-sicpu's
// cmd/desktop), adapted from a fixed-size VRAM sweep to a sparse,
// pointer-centered viewport since GridLoc's grid has no fixed bounds.
package visual

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/cassaundra/gridloc/internal/stepper"
)

const (
	cellSize   = 12
	viewCols   = 48
	viewRows   = 32
	screenW    = cellSize * viewCols
	screenH    = cellSize*viewRows + 24 // status bar strip at the bottom
)

// Game drives a stepper.Runner at roughly 60 steps/sec while ebiten
// repaints, and renders the grid neighborhood around the active pointer.
type Game struct {
	run *stepper.Runner
}

// New returns a Game that drives run, stepping it once per Update call
// (i.e. at ebiten's tick rate) until run reports it has halted.
func New(run *stepper.Runner) *Game {
	return &Game{run: run}
}

func (g *Game) Update() error {
	if !g.run.Halted() {
		if err := g.run.Tick(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	view := g.run.Interpreter().State()
	pos, dir, value, havePointer := view.TopPointer()

	originX := pos.X - viewCols/2
	originY := pos.Y + viewRows/2

	for row := 0; row < viewRows; row++ {
		for col := 0; col < viewCols; col++ {
			x := originX + col
			y := originY - row
			cell := view.Cell(x, y)
			if cell == 0 {
				continue
			}
			px, py := col*cellSize, row*cellSize
			ebitenutil.DrawRect(screen, float64(px), float64(py), cellSize-1, cellSize-1, cellColor(cell))
		}
	}

	if havePointer {
		px := (viewCols/2)*cellSize + cellSize/2
		py := (viewRows/2)*cellSize + cellSize/2
		ebitenutil.DrawRect(screen, float64(px-2), float64(py-2), 4, 4, colornames.Orangered)
	}

	status := fmt.Sprintf("pos=(%d,%d) dir=%s value=%d depth=%d chunks=%d",
		pos.X, pos.Y, dir, value, view.TapeDepth(), view.ChunkCount())
	ebitenutil.DebugPrintAt(screen, status, 4, screenH-18)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// cellColor maps a byte value to a stable, visually distinct color so a
// viewer can recognize recurring bytes (ASCII letters, small integers) at
// a glance rather than seeing indistinguishable noise.
func cellColor(value byte) color.RGBA {
	switch {
	case value >= '0' && value <= '9':
		return color.RGBA{R: 90, G: 160, B: 250, A: 255}
	case value >= 'A' && value <= 'Z', value >= 'a' && value <= 'z':
		return color.RGBA{R: 90, G: 220, B: 140, A: 255}
	default:
		return color.RGBA{R: 220, G: 220, B: 90, A: 255}
	}
}
