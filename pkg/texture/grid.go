package texture

// Size is the edge length of one tile in pixels.
const Size = 16

// Grid is one tile's pixels, row-major: Grid[y][x]. It is a value type, so
// every generator result is an independent copy.
type Grid [Size][Size]Color

// PixelFunc maps a pixel coordinate inside a tile to its colour.
type PixelFunc func(x, y int) Color

// Generate evaluates f at every pixel of a tile.
func Generate(f PixelFunc) Grid {
	var g Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			g[y][x] = f(x, y)
		}
	}
	return g
}

// At returns the pixel at (x, y).
func (g *Grid) At(x, y int) Color {
	return g[y][x]
}

// IsTransparent reports whether every pixel is fully transparent black.
func (g *Grid) IsTransparent() bool {
	for y := range g {
		for x := range g[y] {
			if g[y][x] != Transparent {
				return false
			}
		}
	}
	return true
}
