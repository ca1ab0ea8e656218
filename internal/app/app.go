//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"lifegrid/internal/editor"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var toolKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	message string
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	rows, cols := s.Grid.Dimensions()
	w, _ := s.GridPixels()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(rows, cols, s.CellSize, color.RGBA{R: 60, G: 60, B: 60, A: 255}),
		hud:      ui.NewHUD(s.Grid, w),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.Loop.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.Loop.StepOnce()
	}
	for i, key := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SelectTool(editor.Tools[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.ClearAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.message = fmt.Sprintf("seed %d", s.Reseed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.report(s.CycleBoundary(), "boundary "+s.Grid.Boundary().String())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.report(s.Save(), "saved to "+s.Store.Path)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.report(s.Load(), "loaded "+s.Store.Path)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.Loop.SetDelay(s.Loop.Delay() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.Loop.SetDelay(s.Loop.Delay() / 2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		_, err := s.Click(x, y)
		g.report(err, "")
	}

	s.Loop.Tick()

	g.hud.Update(ui.Status{
		Running: s.Loop.Running(),
		Tool:    s.Tool.String(),
		Delay:   s.Loop.Delay(),
		CanLoad: s.CanLoad(),
		Message: g.message,
	})
	return nil
}

func (g *Game) report(err error, ok string) {
	if err != nil {
		logrus.Warn(err)
		g.message = err.Error()
		return
	}
	if ok != "" {
		g.message = ok
	}
}

// Draw renders the current grid, the cell borders while paused and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	g.painter.Blit(screen, s.Grid.Cells(), g.onColor, g.offColor, s.CellSize)
	if !s.Loop.Running() {
		g.painter.DrawGridLines(screen)
	}
	_, h := s.GridPixels()
	g.hud.Draw(screen, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenSize(g.session)
}

// ScreenSize returns the window size needed for the grid and the HUD.
func ScreenSize(s *Session) (int, int) {
	w, h := s.GridPixels()
	return w, h + ui.PanelHeight(4)
}
