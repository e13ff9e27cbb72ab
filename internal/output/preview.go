package output

import (
	"image"

	"golang.org/x/image/draw"
)

// Preview returns src enlarged by an integer factor with nearest-neighbour
// sampling, so every source pixel becomes a sharp scale×scale block.
func Preview(src image.Image, scale int) *image.NRGBA {
	if scale < 1 {
		scale = 1
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
