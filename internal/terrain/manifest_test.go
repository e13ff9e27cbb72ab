package terrain

import (
	"strings"
	"testing"

	"github.com/OCharnyshevich/terrain-atlas/pkg/atlas"
	"github.com/OCharnyshevich/terrain-atlas/pkg/texture"
)

func TestDefaultManifestCoversEverySlot(t *testing.T) {
	m := Default()
	all := m.All()
	if len(all) != atlas.Terrain.TileCount {
		t.Fatalf("manifest has %d slots, want %d", len(all), atlas.Terrain.TileCount)
	}
	for i, s := range all {
		if s.Index != i {
			t.Fatalf("slot %d has index %d", i, s.Index)
		}
	}
}

func TestDefaultManifestReservedSlots(t *testing.T) {
	m := Default()
	reserved := map[int]bool{}
	for _, i := range []int{20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 35, 36, 40, 41, 42, 43, 44, 45, 60, 61, 62, 63} {
		reserved[i] = true
	}
	for _, s := range m.All() {
		if s.Reserved != reserved[s.Index] {
			t.Errorf("slot %d (%s): reserved = %v, want %v", s.Index, s.Name, s.Reserved, reserved[s.Index])
		}
	}
	if got := len(m.Assigned()); got != 41 {
		t.Errorf("assigned slots = %d, want 41", got)
	}
}

func TestRegistryLookups(t *testing.T) {
	m := Default()

	tests := []struct {
		name  string
		index int
	}{
		{"air", 0},
		{"grass_side", 5},
		{"diamond_ore", 15},
		{"glass", 33},
		{"wheat_stage_0", 49},
		{"wheat_stage_7", 56},
		{"wheat", 59},
		{"torch", 30},
	}
	for _, tt := range tests {
		s, ok := m.ByName(tt.name)
		if !ok {
			t.Errorf("ByName(%q) not found", tt.name)
			continue
		}
		if s.Index != tt.index {
			t.Errorf("ByName(%q).Index = %d, want %d", tt.name, s.Index, tt.index)
		}
		byIdx, ok := m.ByIndex(tt.index)
		if !ok || byIdx.Name != tt.name {
			t.Errorf("ByIndex(%d) = %q, %v; want %q", tt.index, byIdx.Name, ok, tt.name)
		}
	}

	if _, ok := m.ByName("netherrack"); ok {
		t.Error("ByName(netherrack) found, want missing")
	}
	if _, ok := m.ByIndex(64); ok {
		t.Error("ByIndex(64) found, want missing")
	}
}

func TestNewManifestRejects(t *testing.T) {
	gen := primitive(texture.Air)
	tests := []struct {
		name  string
		slots []Slot
		want  string
	}{
		{"out_of_range", []Slot{assign(64, "x", gen)}, "outside"},
		{"negative", []Slot{assign(-1, "x", gen)}, "outside"},
		{"duplicate_index", []Slot{assign(1, "a", gen), assign(1, "b", gen)}, "duplicate index"},
		{"duplicate_name", []Slot{assign(1, "a", gen), assign(2, "a", gen)}, "duplicate name"},
		{"empty_name", []Slot{assign(1, "", gen)}, "empty name"},
		{"reserved_with_generator", []Slot{{Index: 1, Name: "a", Reserved: true, Generate: gen}}, "reserved slot has a generator"},
		{"assigned_without_generator", []Slot{{Index: 1, Name: "a"}}, "no generator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManifest(atlas.Terrain, tt.slots...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestNewManifestSortsByIndex(t *testing.T) {
	gen := primitive(texture.Air)
	m, err := NewManifest(atlas.Terrain, assign(5, "five", gen), reserve(2, "two"), assign(9, "nine", gen))
	if err != nil {
		t.Fatalf("NewManifest: %v", err)
	}
	var got []int
	for _, s := range m.All() {
		got = append(got, s.Index)
	}
	if len(got) != 3 || got[0] != 2 || got[1] != 5 || got[2] != 9 {
		t.Errorf("order = %v, want [2 5 9]", got)
	}
	if s, ok := m.ByName("nine"); !ok || s.Index != 9 {
		t.Errorf("ByName(nine) = %+v, %v", s, ok)
	}
}
