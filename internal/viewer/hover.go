package viewer

import (
	"fmt"
	"image"

	"github.com/OCharnyshevich/terrain-atlas/internal/terrain"
	"github.com/OCharnyshevich/terrain-atlas/pkg/atlas"
)

// TileAt maps a cursor position on a view magnified by zoom to a slot index.
func TileAt(l atlas.Layout, cursor image.Point, zoom float32) (int, bool) {
	if zoom <= 0 || cursor.X < 0 || cursor.Y < 0 {
		return 0, false
	}
	p := image.Pt(int(float32(cursor.X)/zoom), int(float32(cursor.Y)/zoom))
	return l.IndexAt(p)
}

// Describe labels a slot for the status line.
func Describe(m *terrain.Manifest, index int) string {
	s, ok := m.ByIndex(index)
	switch {
	case !ok:
		return fmt.Sprintf("%d (empty)", index)
	case s.Reserved:
		return fmt.Sprintf("%d %s (reserved)", index, s.Name)
	}
	return fmt.Sprintf("%d %s", index, s.Name)
}
