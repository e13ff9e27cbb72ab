package terrain

import (
	"fmt"
	"sort"

	"github.com/OCharnyshevich/terrain-atlas/pkg/atlas"
	"github.com/OCharnyshevich/terrain-atlas/pkg/texture"
)

// Generator builds one tile. Derived tiles read their inputs from src
// instead of regenerating them.
type Generator func(src *Sources) texture.Grid

// Slot is one manifest entry. A reserved slot holds space for content that
// does not exist yet; it has no generator and stays transparent.
type Slot struct {
	Index    int
	Name     string
	Reserved bool
	Generate Generator
}

func assign(index int, name string, gen Generator) Slot {
	return Slot{Index: index, Name: name, Generate: gen}
}

func reserve(index int, name string) Slot {
	return Slot{Index: index, Name: name, Reserved: true}
}

// Manifest maps atlas slots to generators.
type Manifest struct {
	layout atlas.Layout
	slots  []Slot
	byName map[string]int
}

// NewManifest validates slots against layout and returns them ordered by
// index.
func NewManifest(layout atlas.Layout, slots ...Slot) (*Manifest, error) {
	m := &Manifest{
		layout: layout,
		slots:  append([]Slot(nil), slots...),
		byName: make(map[string]int, len(slots)),
	}
	sort.SliceStable(m.slots, func(i, j int) bool { return m.slots[i].Index < m.slots[j].Index })
	if err := m.Validate(); err != nil {
		return nil, err
	}
	for i, s := range m.slots {
		m.byName[s.Name] = i
	}
	return m, nil
}

// Validate checks every slot is in range, unique by index and name, and
// consistent about having a generator.
func (m *Manifest) Validate() error {
	seenIndex := make(map[int]bool, len(m.slots))
	seenName := make(map[string]bool, len(m.slots))
	for _, s := range m.slots {
		if s.Index < 0 || s.Index >= m.layout.TileCount {
			return fmt.Errorf("slot %q: index %d outside [0,%d)", s.Name, s.Index, m.layout.TileCount)
		}
		if seenIndex[s.Index] {
			return fmt.Errorf("slot %q: duplicate index %d", s.Name, s.Index)
		}
		seenIndex[s.Index] = true

		if s.Name == "" {
			return fmt.Errorf("slot %d: empty name", s.Index)
		}
		if seenName[s.Name] {
			return fmt.Errorf("slot %d: duplicate name %q", s.Index, s.Name)
		}
		seenName[s.Name] = true

		if s.Reserved && s.Generate != nil {
			return fmt.Errorf("slot %q: reserved slot has a generator", s.Name)
		}
		if !s.Reserved && s.Generate == nil {
			return fmt.Errorf("slot %q: no generator", s.Name)
		}
	}
	return nil
}

// Layout returns the atlas geometry the manifest targets.
func (m *Manifest) Layout() atlas.Layout { return m.layout }

// All returns every slot in index order.
func (m *Manifest) All() []Slot {
	return append([]Slot(nil), m.slots...)
}

// ByIndex returns the slot at index. Indices with no entry report false.
func (m *Manifest) ByIndex(index int) (Slot, bool) {
	i := sort.Search(len(m.slots), func(i int) bool { return m.slots[i].Index >= index })
	if i < len(m.slots) && m.slots[i].Index == index {
		return m.slots[i], true
	}
	return Slot{}, false
}

// ByName returns the slot with the given name.
func (m *Manifest) ByName(name string) (Slot, bool) {
	i, ok := m.byName[name]
	if !ok {
		return Slot{}, false
	}
	return m.slots[i], true
}

// Assigned returns the slots that have generators, in index order.
func (m *Manifest) Assigned() []Slot {
	var out []Slot
	for _, s := range m.slots {
		if !s.Reserved {
			out = append(out, s)
		}
	}
	return out
}
