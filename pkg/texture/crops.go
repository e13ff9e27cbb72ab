package texture

// WheatStages is the number of wheat growth stages.
const WheatStages = 8

// wheatHeights is the crop height in pixels at each stage, measured from the
// bottom edge of the tile.
var wheatHeights = [WheatStages]int{4, 6, 8, 10, 11, 13, 14, 16}

// wheatHeadStage is the first stage that grows a grain head.
const wheatHeadStage = 5

// WheatHeight returns the crop height in pixels at stage.
func WheatHeight(stage int) int {
	return wheatHeights[stage]
}

func wheatStalkColor(stage int) (r, g, b int) {
	switch {
	case stage <= 2:
		return 55, 150, 35
	case stage <= 4:
		return 65, 135, 30
	case stage == 5:
		return 110, 145, 35
	case stage == 6:
		return 140, 140, 30
	default:
		return 180, 155, 45
	}
}

func wheatHeadColor(stage int) (r, g, b int) {
	switch stage {
	case 5:
		return 150, 130, 35
	case 6:
		return 190, 160, 45
	default:
		return 210, 180, 55
	}
}

func isWheatStalkColumn(x int) bool {
	switch x {
	case 3, 7, 11, 14:
		return true
	}
	return false
}

func isWheatLeafColumn(x int) bool {
	switch x {
	case 2, 4, 6, 8, 10, 12, 13, 15:
		return true
	}
	return false
}

// Wheat renders the crop at the given growth stage, which must be in
// [0, WheatStages). Rows above the stage's height are transparent.
func Wheat(stage int) Grid {
	height := wheatHeights[stage]
	sr, sg, sb := wheatStalkColor(stage)
	hr, hg, hb := wheatHeadColor(stage)
	hasHead := stage >= wheatHeadStage
	seed := stage + 490

	return Generate(func(x, y int) Color {
		up := Size - 1 - y
		if up >= height {
			return Transparent
		}

		stalk := isWheatStalkColumn(x)
		leaf := isWheatLeafColumn(x) && up > 1 && up < height-1 && (up+x)%3 == 0
		head := hasHead && up >= height-3 &&
			(stalk || (x >= 2 && x <= 14 && (up+x)%2 == 0))

		switch {
		case head:
			n := hash(x, y, seed)
			return Opaque(hr+n%15-7, hg+(n>>2)%15-7, hb+(n>>4)%15-7)
		case stalk:
			n := hash(x, y, seed)
			return Opaque(sr+n%12-6, sg+(n>>2)%12-6, sb+(n>>4)%12-6)
		case leaf:
			n := hash(x, y, seed+1)
			return RGBA(sr-10+n%10-5, sg+10+(n>>2)%10-5, sb-5+(n>>4)%10-5, 200)
		}
		return Transparent
	})
}
