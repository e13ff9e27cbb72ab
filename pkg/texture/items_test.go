package texture

import "testing"

func TestSolidItemOval(t *testing.T) {
	g := SolidItem(230, 130, 120, Oval)

	tests := []struct {
		x, y   int
		inside bool
	}{
		{7, 7, true},
		{8, 8, true},
		{3, 7, true},
		{2, 7, false},
		{0, 0, false},
		{15, 15, false},
		{7, 11, true},
		{7, 12, false},
	}
	for _, tt := range tests {
		c := g[tt.y][tt.x]
		if tt.inside && c.A != 255 {
			t.Errorf("(%d,%d) alpha = %d, want opaque", tt.x, tt.y, c.A)
		}
		if !tt.inside && c != Transparent {
			t.Errorf("(%d,%d) = %v, want transparent", tt.x, tt.y, c)
		}
	}
}

func TestSolidItemCustomMask(t *testing.T) {
	diag := Mask(func(x, y int) bool { return x == y })
	g := SolidItem(100, 100, 100, diag)

	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := g[y][x]
			if x == y {
				if c.A != 255 {
					t.Fatalf("diagonal (%d,%d) alpha %d", x, y, c.A)
				}
				if c.R < 93 || c.R > 107 {
					t.Fatalf("diagonal (%d,%d) red %d outside base±7", x, y, c.R)
				}
				continue
			}
			if c != Transparent {
				t.Fatalf("(%d,%d) = %v, want transparent", x, y, c)
			}
		}
	}
}

func TestSolidItemSameShapeSameTint(t *testing.T) {
	// The tint depends only on the coordinate, so two items with the same
	// shape differ by exactly their base colour offset where unclamped.
	a := SolidItem(100, 100, 100, Oval)
	b := SolidItem(110, 100, 100, Oval)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if a[y][x].A == 0 {
				continue
			}
			if int(b[y][x].R)-int(a[y][x].R) != 10 {
				t.Fatalf("(%d,%d) red %d vs %d", x, y, a[y][x].R, b[y][x].R)
			}
		}
	}
}

func TestHoeBladeOverHandle(t *testing.T) {
	g := Hoe()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := g[y][x]
			switch {
			case HoeBlade.Contains(x, y):
				if c.R != c.G || c.G != c.B || c.A != 255 {
					t.Fatalf("blade (%d,%d) = %v, want opaque gray", x, y, c)
				}
			case HoeHandle.Contains(x, y):
				if c.R <= c.B || c.A != 255 {
					t.Fatalf("handle (%d,%d) = %v, want opaque brown", x, y, c)
				}
			default:
				if c != Transparent {
					t.Fatalf("(%d,%d) = %v, want transparent", x, y, c)
				}
			}
		}
	}
}

func TestSeedDots(t *testing.T) {
	g := Seeds()
	painted := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g[y][x].A != 0 {
				painted++
			}
		}
	}
	// Ten non-overlapping dashes of three pixels.
	if painted != 30 {
		t.Errorf("painted %d seed pixels, want 30", painted)
	}
}
