package texture

import "math"

// Air is fully transparent.
func Air() Grid {
	return Generate(func(x, y int) Color { return Transparent })
}

// Stone is medium gray with deep cracks and bright highlights.
func Stone() Grid {
	return Generate(func(x, y int) Color {
		v := 120 + hash(x, y, 1)%40 - 20
		if hash(x, y, 7)%16 < 2 {
			v -= 60
		} else if hash(x, y, 13)%12 < 2 {
			v += 40
		}
		return Gray(v)
	})
}

// Dirt is warm brown with pebbles, dark organic spots and light grains.
func Dirt() Grid {
	return Generate(func(x, y int) Color {
		r, g, b := 139, 90, 60

		n := hash(x, y, 3)
		r += n%30 - 15
		g += (n>>2)%25 - 12
		b += (n>>4)%20 - 10

		if hash(x, y, 19)%25 < 2 {
			r, g, b = r+35, g+25, b+20
		}
		if hash(x, y, 23)%30 < 1 {
			r, g, b = r-40, g-30, b-25
		}
		if hash(x, y, 29)%15 < 1 {
			r, g, b = r+20, g+15, b+10
		}
		return Opaque(r, g, b)
	})
}

// GrassTop is saturated green that never drops below a bright floor.
func GrassTop() Grid {
	return Generate(func(x, y int) Color {
		r, g, b := 105, 195, 95

		n := hash(x, y, 4)
		r += n%30 - 10
		g += (n>>2)%35 - 10
		b += (n>>4)%25 - 10

		if hash(x, y, 31)%12 < 2 {
			r, g, b = r+30, g+45, b+25
		}
		if hash(x, y, 37)%18 < 1 {
			r, g, b = r-25, g-35, b-20
		}
		if hash(x, y, 41)%20 < 1 {
			r, g, b = r+40, g+30, b-10
		}
		return Opaque(clampRange(r, 50, 255), clampRange(g, 100, 255), clampRange(b, 50, 255))
	})
}

// Sand is tan with a faint grain.
func Sand() Grid {
	return Generate(func(x, y int) Color {
		n := hash(x, y, 6)
		return Opaque(
			210+n%20-10,
			200+(n>>2)%18-9,
			145+(n>>4)%22-11,
		)
	})
}

// Gravel is brownish gray with darker rocks.
func Gravel() Grid {
	return Generate(func(x, y int) Color {
		v := 125 + hash(x, y, 7)%35 - 17
		if hash(x, y, 43)%15 < 2 {
			v -= 45
		}
		return Opaque(v, v-8, v-12)
	})
}

// LogEnd draws concentric oak rings around the tile centre.
func LogEnd() Grid {
	const center = 7.5
	return Generate(func(x, y int) Color {
		dx, dy := float64(x)-center, float64(y)-center
		dist := math.Sqrt(dx*dx + dy*dy)

		base := 160
		if int(dist*1.8)%2 == 1 {
			base = 120
		}

		r := base + hash(x, y, 8)%20 - 10
		return Opaque(r, int(float64(r)*0.7), int(float64(r)*0.42))
	})
}

// LogBark is oak bark with a dark vertical stripe every fourth column.
func LogBark() Grid {
	return Generate(func(x, y int) Color {
		r, g, b := 145, 115, 70

		n := hash(x, y, 9)
		r += n%25 - 12
		g += (n>>2)%20 - 10
		b += (n>>4)%18 - 9

		if x%4 == 0 {
			r, g, b = r-20, g-15, b-10
		}
		return Opaque(r, g, b)
	})
}

// Leaves are translucent forest green. Holes are drawn at a lower alpha
// rather than cut out, so the canopy never shows fully see-through pixels.
func Leaves() Grid {
	return Generate(func(x, y int) Color {
		r, g, b := 80, 140, 70

		n := hash(x, y, 10)
		r += n%35 - 17
		g += (n>>2)%40 - 20
		b += (n>>4)%30 - 15

		if hash(x, y, 47)%22 < 1 {
			return RGBA(clampRange(r, 40, 120), clampRange(g, 80, 180), clampRange(b, 40, 120), 160)
		}
		return RGBA(clampRange(r, 50, 140), clampRange(g, 90, 200), clampRange(b, 50, 130), 220)
	})
}

// Water is semi-transparent blue.
func Water() Grid {
	return Generate(func(x, y int) Color {
		n := hash(x, y, 11)
		return RGBA(
			50+n%18-9,
			105+(n>>2)%22-11,
			220+(n>>4)%25-12,
			140,
		)
	})
}

// Bedrock is near-black gray.
func Bedrock() Grid {
	return Generate(func(x, y int) Color {
		return Gray(25 + hash(x, y, 16)%30)
	})
}

// Planks are oak boards with a dark seam every fourth row and a diagonal grain.
func Planks() Grid {
	return Generate(func(x, y int) Color {
		r, g, b := 175, 140, 90

		n := hash(x, y, 19)
		r += n%20 - 10
		g += (n>>2)%18 - 9
		b += (n>>4)%15 - 7

		if y%4 == 0 {
			r, g, b = r-30, g-25, b-20
		}
		if (x+y/2)%3 == 0 {
			r, g, b = r-10, g-8, b-6
		}
		return Opaque(r, g, b)
	})
}

// Glass is a mostly opaque one-pixel frame around a nearly clear pane.
func Glass() Grid {
	return Generate(func(x, y int) Color {
		n := hash(x, y, 33)
		if x == 0 || x == Size-1 || y == 0 || y == Size-1 {
			return RGBA(170+n%15, 190+(n>>2)%15, 200+(n>>4)%15, 220)
		}
		return RGBA(200+n%10, 220+(n>>2)%10, 230+(n>>4)%10, 60)
	})
}

// Lava is glowing orange with dark veins and yellow hot spots. Hot spots are
// checked last and replace the vein colour outright.
func Lava() Grid {
	return Generate(func(x, y int) Color {
		n1 := hash(x*2, y*3, 461)
		n2 := hash(x*5+7, y*4+3, 462)

		r := 210 + n1%30
		g := 90 + (n1>>2)%40
		b := 15 + (n1>>4)%20

		if n2%20 < 2 {
			r, g, b = r-80, g-40, b-5
		}
		if n2%25 < 1 {
			r, g, b = 255, 230, 60
		}
		return Opaque(r, g, b)
	})
}

// Obsidian is purple-black with sparse violet highlights.
func Obsidian() Grid {
	return Generate(func(x, y int) Color {
		n := hash(x, y, 47)

		r := 18 + n%15
		g := 10 + (n>>2)%10
		b := 28 + (n>>4)%18

		if n%20 < 1 {
			r += 25
			b += 30
		}
		return Opaque(r, g, b)
	})
}
