package texture

// Shape selects which pixels of an item icon are painted. It is either
// Oval or a Mask wrapping a custom predicate.
type Shape interface {
	Contains(x, y int) bool
	shape()
}

type oval struct{}

// Oval is the default item silhouette, a rough ellipse centred on the tile.
var Oval Shape = oval{}

func (oval) Contains(x, y int) bool {
	cx, cy := float64(x)-7.5, float64(y)-7.5
	return cx*cx/25+cy*cy/20 < 1
}

func (oval) shape() {}

// Mask is a Shape defined by an arbitrary coordinate predicate.
type Mask func(x, y int) bool

// Contains reports whether the predicate accepts (x, y).
func (m Mask) Contains(x, y int) bool { return m(x, y) }

func (Mask) shape() {}

// SolidItem paints a noise-tinted base colour inside shape at full opacity
// and leaves everything else transparent.
func SolidItem(r, g, b int, shape Shape) Grid {
	return Generate(func(x, y int) Color {
		if !shape.Contains(x, y) {
			return Transparent
		}
		n := hash(x, y, 99)
		return Opaque(r+n%15-7, g+(n>>2)%15-7, b+(n>>4)%15-7)
	})
}

// Hoe icon parts. The handle runs diagonally up from the bottom-left; the
// blade is a bar across the top-right.
var (
	HoeHandle = Mask(func(x, y int) bool {
		hx := x - 2
		hy := Size - 1 - y - 2
		d := hx - hy
		return hx >= 0 && hx <= 8 && hy >= 0 && hy <= 8 && d >= -1 && d <= 1
	})
	HoeBlade = Mask(func(x, y int) bool {
		return x >= 8 && x <= 14 && y >= 2 && y <= 5
	})
)

// Hoe is a stone blade on a wooden handle. The blade is drawn over the handle.
func Hoe() Grid {
	return Generate(func(x, y int) Color {
		switch {
		case HoeBlade.Contains(x, y):
			return Gray(130 + hash(x, y, 57)%20 - 10)
		case HoeHandle.Contains(x, y):
			n := hash(x, y, 571)
			return Opaque(115+n%15-7, 80+(n>>2)%15-7, 45+(n>>4)%15-7)
		}
		return Transparent
	})
}

// seedDots are the centres of the three-pixel horizontal seed dashes.
var seedDots = [][2]int{
	{4, 6}, {7, 4}, {10, 7}, {5, 10}, {8, 9},
	{12, 5}, {6, 13}, {11, 11}, {3, 8}, {9, 12},
}

// SeedDots is the seeds icon silhouette.
var SeedDots = Mask(func(x, y int) bool {
	for _, d := range seedDots {
		dx := x - d[0]
		if dx >= -1 && dx <= 1 && y == d[1] {
			return true
		}
	}
	return false
})

// Seeds is a scatter of small green seeds.
func Seeds() Grid {
	return Generate(func(x, y int) Color {
		if !SeedDots.Contains(x, y) {
			return Transparent
		}
		n := hash(x, y, 58)
		return Opaque(90+n%15-7, 120+(n>>2)%15-7, 35+(n>>4)%15-7)
	})
}

// Wheat sheaf parts: three grain heads over three stalks.
var (
	SheafHeads = Mask(func(x, y int) bool {
		return (x >= 5 && x <= 7 && y >= 2 && y <= 5) ||
			(x >= 7 && x <= 9 && y >= 1 && y <= 4) ||
			(x >= 9 && x <= 11 && y >= 2 && y <= 5)
	})
	SheafStalks = Mask(func(x, y int) bool {
		return (x == 6 && y >= 5 && y <= 14) ||
			(x == 8 && y >= 4 && y <= 14) ||
			(x == 10 && y >= 5 && y <= 14)
	})
)

// WheatItem is a golden wheat sheaf. Heads are drawn over stalks.
func WheatItem() Grid {
	return Generate(func(x, y int) Color {
		switch {
		case SheafHeads.Contains(x, y):
			n := hash(x, y, 59)
			return Opaque(210+n%15-7, 175+(n>>2)%15-7, 50+(n>>4)%15-7)
		case SheafStalks.Contains(x, y):
			n := hash(x, y, 591)
			return Opaque(170+n%15-7, 145+(n>>2)%15-7, 40+(n>>4)%15-7)
		}
		return Transparent
	})
}
