package terrain

import (
	"fmt"

	"github.com/OCharnyshevich/terrain-atlas/pkg/atlas"
	"github.com/OCharnyshevich/terrain-atlas/pkg/texture"
)

// Sources holds the primitive tiles other tiles are derived from: grass side
// from grass top and dirt, the ores from stone, farmland from dirt.
type Sources struct {
	Stone    texture.Grid
	Dirt     texture.Grid
	GrassTop texture.Grid
}

// NewSources generates the shared primitive tiles once.
func NewSources() *Sources {
	return &Sources{
		Stone:    texture.Stone(),
		Dirt:     texture.Dirt(),
		GrassTop: texture.GrassTop(),
	}
}

func primitive(f func() texture.Grid) Generator {
	return func(*Sources) texture.Grid { return f() }
}

func ore(o texture.Ore) Generator {
	return func(src *Sources) texture.Grid { return o.Generate(&src.Stone) }
}

func item(r, g, b int) Generator {
	return func(*Sources) texture.Grid { return texture.SolidItem(r, g, b, texture.Oval) }
}

func wheat(stage int) Generator {
	return func(*Sources) texture.Grid { return texture.Wheat(stage) }
}

// terrainSlots is the hand-maintained contents of terrain.png.
func terrainSlots() []Slot {
	slots := []Slot{
		assign(0, "air", primitive(texture.Air)),
		assign(1, "stone", func(src *Sources) texture.Grid { return src.Stone }),
		assign(2, "cobblestone", primitive(texture.Cobblestone)),
		assign(3, "dirt", func(src *Sources) texture.Grid { return src.Dirt }),
		assign(4, "grass_top", func(src *Sources) texture.Grid { return src.GrassTop }),
		assign(5, "grass_side", func(src *Sources) texture.Grid {
			return texture.GrassSide(&src.GrassTop, &src.Dirt)
		}),
		assign(6, "sand", primitive(texture.Sand)),
		assign(7, "gravel", primitive(texture.Gravel)),
		assign(8, "log_end", primitive(texture.LogEnd)),
		assign(9, "log_bark", primitive(texture.LogBark)),
		assign(10, "leaves", primitive(texture.Leaves)),
		assign(11, "water", primitive(texture.Water)),
		assign(12, "coal_ore", ore(texture.CoalOre)),
		assign(13, "iron_ore", ore(texture.IronOre)),
		assign(14, "gold_ore", ore(texture.GoldOre)),
		assign(15, "diamond_ore", ore(texture.DiamondOre)),
		assign(16, "bedrock", primitive(texture.Bedrock)),
		assign(17, "raw_porkchop", item(230, 130, 120)),
		assign(18, "rotten_flesh", item(130, 95, 60)),
		assign(19, "planks", primitive(texture.Planks)),
		reserve(20, "crafting_table_top"),
		reserve(21, "crafting_table_side"),
		reserve(22, "chest_top"),
		reserve(23, "chest_side"),
		reserve(24, "rail"),
		reserve(25, "tnt_top"),
		reserve(26, "tnt_side"),
		reserve(27, "furnace_front"),
		reserve(28, "furnace_side"),
		reserve(29, "furnace_top"),
		reserve(30, "torch"),
		assign(31, "coal", item(30, 30, 30)),
		assign(32, "iron_ingot", item(190, 185, 180)),
		assign(33, "glass", primitive(texture.Glass)),
		assign(34, "cooked_porkchop", item(190, 120, 75)),
		reserve(35, "flower_red"),
		reserve(36, "flower_yellow"),
		assign(37, "diamond", item(110, 220, 245)),
		assign(38, "charcoal", item(50, 35, 20)),
		assign(39, "gold_ingot", item(245, 190, 40)),
	}
	for i := 40; i <= 45; i++ {
		slots = append(slots, reserve(i, fmt.Sprintf("redstone_%d", i-40)))
	}
	slots = append(slots,
		assign(46, "lava", primitive(texture.Lava)),
		assign(47, "obsidian", primitive(texture.Obsidian)),
		assign(48, "farmland", func(src *Sources) texture.Grid { return texture.Farmland(&src.Dirt) }),
	)
	for stage := 0; stage < texture.WheatStages; stage++ {
		slots = append(slots, assign(49+stage, fmt.Sprintf("wheat_stage_%d", stage), wheat(stage)))
	}
	slots = append(slots,
		assign(57, "hoe", primitive(texture.Hoe)),
		assign(58, "seeds", primitive(texture.Seeds)),
		assign(59, "wheat", primitive(texture.WheatItem)),
	)
	for i := 60; i < atlas.Terrain.TileCount; i++ {
		slots = append(slots, reserve(i, fmt.Sprintf("unused_%d", i)))
	}
	return slots
}

// Default returns the terrain.png manifest.
func Default() *Manifest {
	m, err := NewManifest(atlas.Terrain, terrainSlots()...)
	if err != nil {
		panic(fmt.Sprintf("terrain: built-in manifest: %v", err))
	}
	return m
}
