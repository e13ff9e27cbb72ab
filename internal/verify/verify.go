// Package verify compares a generated atlas with a reference image pixel
// for pixel.
package verify

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/OCharnyshevich/terrain-atlas/pkg/atlas"
)

// MismatchError lists the tiles whose pixels differ from the reference.
type MismatchError struct {
	Tiles  []int // tile indices in ascending order
	Pixels int   // total differing pixels
}

func (e *MismatchError) Error() string {
	idx := make([]string, len(e.Tiles))
	for i, t := range e.Tiles {
		idx[i] = fmt.Sprint(t)
	}
	return fmt.Sprintf("%d pixels differ in %d tiles: %s", e.Pixels, len(e.Tiles), strings.Join(idx, ","))
}

// LoadPNG decodes a reference image from disk.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode reference %s: %w", path, err)
	}
	return img, nil
}

// Compare checks got against want. Both images must have the layout's
// dimensions. Pixels are compared as straight-alpha RGBA.
func Compare(got, want image.Image, layout atlas.Layout) error {
	size := image.Pt(layout.Width(), layout.Height())
	if got.Bounds().Size() != size {
		return fmt.Errorf("generated atlas is %v, layout wants %v", got.Bounds().Size(), size)
	}
	if want.Bounds().Size() != size {
		return fmt.Errorf("reference is %v, layout wants %v", want.Bounds().Size(), size)
	}

	gmin, wmin := got.Bounds().Min, want.Bounds().Min
	diff := make(map[int]bool)
	pixels := 0
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			g := nrgba(got.At(gmin.X+x, gmin.Y+y))
			w := nrgba(want.At(wmin.X+x, wmin.Y+y))
			if g == w {
				continue
			}
			pixels++
			if idx, ok := layout.IndexAt(image.Pt(x, y)); ok {
				diff[idx] = true
			}
		}
	}
	if pixels == 0 {
		return nil
	}

	e := &MismatchError{Pixels: pixels}
	for i := 0; i < layout.TileCount; i++ {
		if diff[i] {
			e.Tiles = append(e.Tiles, i)
		}
	}
	return e
}

// nrgba normalises a colour to 8-bit straight alpha. Fully transparent
// pixels compare equal whatever their colour channels hold.
func nrgba(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return color.NRGBA{}
	}
	return n
}
