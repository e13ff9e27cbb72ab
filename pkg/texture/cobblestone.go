package texture

import "math"

// disk is one hand-placed stone in the cobblestone pattern.
type disk struct {
	cx, cy int
	radius float64
	base   int
}

// cobbles are tested in order; a pixel belongs to the first disk that
// contains it, not the closest.
var cobbles = []disk{
	{3, 3, 3.5, 175},
	{11, 3, 3, 155},
	{7, 8, 4, 185},
	{2, 11, 2.5, 165},
	{13, 12, 3, 170},
	{7, 14, 2.5, 160},
	{14, 7, 2, 180},
}

// Cobblestone is chunky gray stones separated by thin dark cracks.
func Cobblestone() Grid {
	return Generate(func(x, y int) Color {
		i, dist := cobbleAt(x, y)
		if i < 0 {
			v := 5 + hash(x, y, 2)%15
			if hash(x, y, 11)%8 < 1 {
				v = 0
			}
			return Gray(v)
		}

		s := cobbles[i]
		v := s.base + hash(x, y, 5)%25 - 12
		switch {
		case x < s.cx && y < s.cy && dist < s.radius*0.7:
			v += 50
		case x > s.cx && y > s.cy:
			v -= 25
		}
		if v > 160 && hash(x, y, 17)%12 < 1 {
			v = 255
		}
		return Gray(v)
	})
}

// cobbleAt returns the index of the stone owning (x, y) and the distance to
// its centre, or -1 for crack pixels.
func cobbleAt(x, y int) (int, float64) {
	for i, s := range cobbles {
		dx, dy := float64(x-s.cx), float64(y-s.cy)
		if dist := math.Sqrt(dx*dx + dy*dy); dist < s.radius {
			return i, dist
		}
	}
	return -1, 0
}
