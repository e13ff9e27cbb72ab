//go:build ebiten

package viewer

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OCharnyshevich/terrain-atlas/internal/terrain"
	"github.com/OCharnyshevich/terrain-atlas/pkg/atlas"
)

var (
	background = color.NRGBA{R: 40, G: 40, B: 48, A: 255}
	gridLine   = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
)

// Game shows an atlas magnified, with the slot under the cursor named in
// the status line.
type Game struct {
	atlas    *atlas.Atlas
	manifest *terrain.Manifest
	img      *ebiten.Image
	zoom     *Zoom
	grid     bool
	status   string
}

// New wraps a built atlas for display at the given initial zoom.
func New(a *atlas.Atlas, m *terrain.Manifest, zoom int) *Game {
	return &Game{
		atlas:    a,
		manifest: m,
		img:      ebiten.NewImageFromImage(a.Image()),
		zoom:     NewZoom(float32(zoom), 1, 32),
		grid:     true,
	}
}

// Update handles input and advances the zoom animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.grid = !g.grid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.zoom.Step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.zoom.Step(-1)
	}
	if _, wy := ebiten.Wheel(); wy > 0 {
		g.zoom.Step(1)
	} else if wy < 0 {
		g.zoom.Step(-1)
	}
	g.zoom.Update(1 / float32(ebiten.TPS()))

	cx, cy := ebiten.CursorPosition()
	if idx, ok := TileAt(g.atlas.Layout(), image.Pt(cx, cy), g.zoom.Level()); ok {
		g.status = Describe(g.manifest, idx)
	} else {
		g.status = ""
	}
	return nil
}

// Draw renders the atlas, the optional tile grid and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	z := float64(g.zoom.Level())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(z, z)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.img, op)

	if g.grid {
		g.drawGrid(screen, z)
	}
	if g.status != "" {
		ebitenutil.DebugPrint(screen, g.status)
	}
}

func (g *Game) drawGrid(screen *ebiten.Image, z float64) {
	l := g.atlas.Layout()
	step := float64(l.TileSize) * z
	w, h := float64(l.Width())*z, float64(l.Height())*z
	for c := 1; c < l.TilesPerRow; c++ {
		x := float32(float64(c) * step)
		vector.StrokeLine(screen, x, 0, x, float32(h), 1, gridLine, false)
	}
	for r := 1; r < l.Rows(); r++ {
		y := float32(float64(r) * step)
		vector.StrokeLine(screen, 0, y, float32(w), y, 1, gridLine, false)
	}
}

// Layout keeps a one-to-one mapping between window and screen pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
