package atlas

import (
	"fmt"
	"image"

	"github.com/OCharnyshevich/terrain-atlas/pkg/texture"
)

// Layout fixes the grid geometry of an atlas: square tiles of TileSize
// pixels, TilesPerRow to a row, TileCount slots in total.
type Layout struct {
	TileSize    int
	TilesPerRow int
	TileCount   int
}

// Terrain is the layout of terrain.png: 64 slots of 16px tiles, 8 per row.
var Terrain = Layout{TileSize: texture.Size, TilesPerRow: 8, TileCount: 64}

// Validate reports whether the layout can hold texture grids.
func (l Layout) Validate() error {
	if l.TileSize != texture.Size {
		return fmt.Errorf("tile size %d: grids are %dpx", l.TileSize, texture.Size)
	}
	if l.TilesPerRow < 1 {
		return fmt.Errorf("tiles per row %d: must be positive", l.TilesPerRow)
	}
	if l.TileCount < 0 {
		return fmt.Errorf("tile count %d: must not be negative", l.TileCount)
	}
	return nil
}

// Rows is the number of tile rows, rounding a partial last row up.
func (l Layout) Rows() int {
	return (l.TileCount + l.TilesPerRow - 1) / l.TilesPerRow
}

// Width is the atlas width in pixels.
func (l Layout) Width() int {
	return l.TilesPerRow * l.TileSize
}

// Height is the atlas height in pixels.
func (l Layout) Height() int {
	return l.Rows() * l.TileSize
}

// Origin returns the top-left pixel of the tile at index.
func (l Layout) Origin(index int) image.Point {
	col := index % l.TilesPerRow
	row := index / l.TilesPerRow
	return image.Pt(col*l.TileSize, row*l.TileSize)
}

// TileBounds returns the pixel rectangle covered by the tile at index.
func (l Layout) TileBounds(index int) image.Rectangle {
	o := l.Origin(index)
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(l.TileSize, l.TileSize))}
}

// IndexAt returns the index of the tile covering pixel p, or false when p is
// outside every slot.
func (l Layout) IndexAt(p image.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width() || p.Y >= l.Height() {
		return 0, false
	}
	idx := (p.Y/l.TileSize)*l.TilesPerRow + p.X/l.TileSize
	if idx >= l.TileCount {
		return 0, false
	}
	return idx, true
}
