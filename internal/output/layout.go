package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image"
)

// Region names one rectangle of an atlas image.
type Region struct {
	Name string
	Rect image.Rectangle
}

// TexturePacker hash format, the layout most atlas loaders read.

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonMeta struct {
	Image  string   `json:"image"`
	Format string   `json:"format"`
	Size   jsonSize `json:"size"`
	Scale  string   `json:"scale"`
}

type jsonLayout struct {
	Frames map[string]jsonFrame `json:"frames"`
	Meta   jsonMeta             `json:"meta"`
}

func newLayout(imageName string, size image.Point, regions []Region) jsonLayout {
	l := jsonLayout{
		Frames: make(map[string]jsonFrame, len(regions)),
		Meta: jsonMeta{
			Image:  imageName,
			Format: "RGBA8888",
			Size:   jsonSize{W: size.X, H: size.Y},
			Scale:  "1",
		},
	}
	for _, r := range regions {
		w, h := r.Rect.Dx(), r.Rect.Dy()
		l.Frames[r.Name] = jsonFrame{
			Frame:            jsonRect{X: r.Rect.Min.X, Y: r.Rect.Min.Y, W: w, H: h},
			SpriteSourceSize: jsonRect{W: w, H: h},
			SourceSize:       jsonSize{W: w, H: h},
		}
	}
	return l
}

// WriteLayout writes the regions of an atlas image as TexturePacker JSON,
// atomically like WritePNG.
func WriteLayout(path, imageName string, size image.Point, regions []Region) error {
	data, err := json.MarshalIndent(newLayout(imageName, size, regions), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	data = append(data, '\n')
	return atomicWrite(path, func(w *bufio.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
