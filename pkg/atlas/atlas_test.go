package atlas

import (
	"image"
	"testing"

	"github.com/OCharnyshevich/terrain-atlas/pkg/texture"
)

func solid(c texture.Color) texture.Grid {
	return texture.Generate(func(x, y int) texture.Color { return c })
}

func newTerrain(t *testing.T) *Atlas {
	t.Helper()
	a, err := New(Terrain)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func TestNewAtlasIsTransparent(t *testing.T) {
	a := newTerrain(t)
	b := a.Image().Bounds()
	if b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("bounds = %v, want 128x128", b)
	}
	for _, v := range a.Image().Pix {
		if v != 0 {
			t.Fatal("new atlas has non-zero bytes")
		}
	}
}

func TestDrawTileWritesOnlyItsSlot(t *testing.T) {
	a := newTerrain(t)
	red := texture.Opaque(255, 0, 0)
	g := solid(red)
	a.DrawTile(9, &g)

	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			got := texture.FromNRGBA(a.Image().NRGBAAt(x, y))
			inSlot := x >= 16 && x < 32 && y >= 16 && y < 32
			if inSlot && got != red {
				t.Fatalf("(%d,%d) = %v, want red", x, y, got)
			}
			if !inSlot && got != texture.Transparent {
				t.Fatalf("(%d,%d) = %v outside slot 9, want transparent", x, y, got)
			}
		}
	}
}

func TestTileReadBack(t *testing.T) {
	a := newTerrain(t)
	g := texture.Stone()
	a.DrawTile(1, &g)

	if got := a.Tile(1); got != g {
		t.Error("Tile(1) differs from the drawn grid")
	}
	if got := a.Tile(2); !got.IsTransparent() {
		t.Error("Tile(2) should be transparent")
	}
}

func TestDrawAtClipsOutOfBounds(t *testing.T) {
	tests := []struct {
		name    string
		origin  image.Point
		written int
	}{
		{"inside", image.Pt(0, 0), 256},
		{"right_edge", image.Pt(120, 0), 8 * 16},
		{"bottom_right", image.Pt(120, 120), 8 * 8},
		{"negative", image.Pt(-4, -4), 12 * 12},
		{"far_outside", image.Pt(500, 500), 0},
		{"below", image.Pt(0, 128), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTerrain(t)
			white := texture.Opaque(255, 255, 255)
			g := solid(white)

			if n := a.DrawAt(tt.origin, &g); n != tt.written {
				t.Errorf("DrawAt wrote %d pixels, want %d", n, tt.written)
			}
			if b := a.Image().Bounds(); b != image.Rect(0, 0, 128, 128) {
				t.Errorf("bounds changed to %v", b)
			}

			count := 0
			for i := 3; i < len(a.Image().Pix); i += 4 {
				if a.Image().Pix[i] != 0 {
					count++
				}
			}
			if count != tt.written {
				t.Errorf("%d opaque pixels in buffer, want %d", count, tt.written)
			}
		})
	}
}

func TestDrawTileOutOfRangeIndexIsDropped(t *testing.T) {
	a := newTerrain(t)
	g := solid(texture.Opaque(1, 2, 3))
	a.DrawTile(64, &g)
	a.DrawTile(-1, &g)
	for _, v := range a.Image().Pix {
		if v != 0 {
			t.Fatal("out-of-range draw reached the buffer")
		}
	}
}

func TestDrawTilePastCountInPartialRow(t *testing.T) {
	a, err := New(Layout{TileSize: texture.Size, TilesPerRow: 8, TileCount: 60})
	if err != nil {
		t.Fatal(err)
	}
	g := solid(texture.Opaque(1, 2, 3))
	a.DrawTile(60, &g)
	for _, v := range a.Image().Pix {
		if v != 0 {
			t.Fatal("draw past tile count reached the partial row")
		}
	}
}

func TestDrawPreservesStraightAlpha(t *testing.T) {
	a := newTerrain(t)
	c := texture.RGBA(200, 220, 230, 60)
	g := solid(c)
	a.DrawTile(0, &g)

	pix := a.Image().Pix[:4]
	if pix[0] != 200 || pix[1] != 220 || pix[2] != 230 || pix[3] != 60 {
		t.Errorf("stored bytes %v, want [200 220 230 60]", pix)
	}
}

func TestNewRejectsBadLayout(t *testing.T) {
	if _, err := New(Layout{TileSize: 8, TilesPerRow: 8, TileCount: 64}); err == nil {
		t.Error("New with 8px tiles: want error")
	}
}
