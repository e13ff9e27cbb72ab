package texture

// grassBand is the number of grass rows at the top of a grass side.
const grassBand = 3

// GrassSide takes the top rows from a grass top and the rest from dirt.
func GrassSide(top, dirt *Grid) Grid {
	var g Grid
	for y := 0; y < Size; y++ {
		if y < grassBand {
			g[y] = top[y]
		} else {
			g[y] = dirt[y]
		}
	}
	return g
}

// Farmland darkens dirt and cuts a furrow into the first two of every four rows.
func Farmland(dirt *Grid) Grid {
	return Generate(func(x, y int) Color {
		c := dirt[y][x]
		r, g, b := c.RGB()
		r, g, b = int(clamp8(r-25)), int(clamp8(g-20)), int(clamp8(b-15))
		if y%4 < 2 {
			r, g, b = r-20, g-15, b-10
		}
		return RGBA(r, g, b, int(c.A))
	})
}

// Ore describes one member of the ore family: the vein colour and the seed
// that decorrelates its vein pattern from the other ores.
type Ore struct {
	Seed    int
	R, G, B int
}

// Ore family members. Each seed matches the atlas slot the ore occupies.
var (
	CoalOre    = Ore{Seed: 12, R: 40, G: 40, B: 40}
	IronOre    = Ore{Seed: 13, R: 170, G: 130, B: 90}
	GoldOre    = Ore{Seed: 14, R: 245, G: 205, B: 0}
	DiamondOre = Ore{Seed: 15, R: 90, G: 210, B: 245}
)

// IsVein reports whether (x, y) is part of the ore's vein pattern.
func (o Ore) IsVein(x, y int) bool {
	return hash(x*3+7, y*5+11, o.Seed)%16 < 3
}

// Generate overlays the ore's veins on stone. Every pixel outside the veins
// is copied from stone unchanged.
func (o Ore) Generate(stone *Grid) Grid {
	return Generate(func(x, y int) Color {
		if !o.IsVein(x, y) {
			return stone[y][x]
		}
		n := hash(x, y, o.Seed+50)
		return Opaque(
			o.R+n%20-10,
			o.G+(n>>2)%20-10,
			o.B+(n>>4)%20-10,
		)
	})
}
