package domain

import (
	"testing"

	"hexcrawl-server/internal/hex"
)

func TestGameMapOutsideIsWall(t *testing.T) {
	m := NewGameMap(map[hex.Coord]Tile{
		hex.Origin: {Kind: TileEmpty},
	})

	if m.At(hex.Origin).Kind != TileEmpty {
		t.Error("Known cell must come back as written")
	}
	if m.At(hex.Coord{Q: 5, R: 5}).Kind != TileWall {
		t.Error("Missing cell must read as a wall")
	}
}

func TestGameMapWithTileIsCopyOnWrite(t *testing.T) {
	door := hex.Coord{Q: 1, R: 0}
	old := NewGameMap(map[hex.Coord]Tile{
		hex.Origin: {Kind: TileEmpty},
		door:       {Kind: TileDoor},
	})

	opened := old.WithTile(door, Tile{Kind: TileDoor, DoorOpen: true})

	if old.At(door).DoorOpen {
		t.Error("Old map version must not see the patch")
	}
	if !opened.At(door).DoorOpen {
		t.Error("New map version must see the patch")
	}
	if opened.Version() != old.Version()+1 {
		t.Errorf("Patch must bump the version, got %d -> %d", old.Version(), opened.Version())
	}
	if opened.At(hex.Origin).Kind != TileEmpty {
		t.Error("Unpatched cells must read through to the shared base")
	}
}

func TestGameMapForEachSeesPatches(t *testing.T) {
	door := hex.Coord{Q: 1, R: 0}
	m := NewGameMap(map[hex.Coord]Tile{
		hex.Origin: {Kind: TileEmpty},
		door:       {Kind: TileDoor},
	}).WithTile(door, Tile{Kind: TileDoor, DoorOpen: true})

	seen := map[hex.Coord]Tile{}
	m.ForEach(func(c hex.Coord, tile Tile) {
		seen[c] = tile
	})

	if len(seen) != 2 {
		t.Fatalf("ForEach must visit every cell once, got %d", len(seen))
	}
	if !seen[door].DoorOpen {
		t.Error("ForEach must report the patched tile state")
	}
}

func TestTileOpaqueness(t *testing.T) {
	cases := []struct {
		tile   Tile
		cost   int
		opaque bool
	}{
		{Tile{Kind: TileEmpty}, 1, false},
		{Tile{Kind: TileTree}, 8, false},
		{Tile{Kind: TileWall}, 1000, true},
		{Tile{Kind: TileDoor}, 1000, true},
		{Tile{Kind: TileDoor, DoorOpen: true}, 1, false},
	}
	for _, c := range cases {
		if got := c.tile.Opaqueness(); got != c.cost {
			t.Errorf("%v: opaqueness %d, want %d", c.tile, got, c.cost)
		}
		if got := c.tile.IsOpaque(); got != c.opaque {
			t.Errorf("%v: opaque %v, want %v", c.tile, got, c.opaque)
		}
	}
}
