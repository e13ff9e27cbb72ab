package atlas

import (
	"image"

	"github.com/OCharnyshevich/terrain-atlas/pkg/texture"
)

// Atlas is the composited pixel buffer. It starts fully transparent and is
// written only through DrawTile and DrawAt.
type Atlas struct {
	layout Layout
	img    *image.NRGBA
}

// New allocates a transparent atlas for the layout.
func New(l Layout) (*Atlas, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &Atlas{
		layout: l,
		img:    image.NewNRGBA(image.Rect(0, 0, l.Width(), l.Height())),
	}, nil
}

// Layout returns the atlas geometry.
func (a *Atlas) Layout() Layout { return a.layout }

// Image exposes the backing buffer for encoding. Callers must not write to it.
func (a *Atlas) Image() *image.NRGBA { return a.img }

// DrawTile copies g into the slot at index. An index outside the layout
// draws nothing, even when its origin would land in a partial last row.
func (a *Atlas) DrawTile(index int, g *texture.Grid) {
	if index < 0 || index >= a.layout.TileCount {
		return
	}
	a.DrawAt(a.layout.Origin(index), g)
}

// DrawAt copies g with its top-left corner at origin and returns the number
// of pixels written. Pixels outside the buffer are silently skipped; the
// buffer never grows.
func (a *Atlas) DrawAt(origin image.Point, g *texture.Grid) int {
	b := a.img.Bounds()
	written := 0
	for y := 0; y < texture.Size; y++ {
		for x := 0; x < texture.Size; x++ {
			p := image.Pt(origin.X+x, origin.Y+y)
			if !p.In(b) {
				continue
			}
			a.img.SetNRGBA(p.X, p.Y, g[y][x].NRGBA())
			written++
		}
	}
	return written
}

// Tile reads the slot at index back out of the buffer. Pixels outside the
// buffer read as transparent.
func (a *Atlas) Tile(index int) texture.Grid {
	o := a.layout.Origin(index)
	b := a.img.Bounds()
	var g texture.Grid
	for y := 0; y < texture.Size; y++ {
		for x := 0; x < texture.Size; x++ {
			p := image.Pt(o.X+x, o.Y+y)
			if p.In(b) {
				g[y][x] = texture.FromNRGBA(a.img.NRGBAAt(p.X, p.Y))
			}
		}
	}
	return g
}
