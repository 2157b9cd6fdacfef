package systems

import (
	"testing"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

func placeActor(loc *domain.Location, id domain.ActorID, race domain.Race, c hex.Coord) *domain.Actor {
	a := domain.NewActor(race, hex.NewPosition(c, hex.East))
	loc.ActorsByID[id] = a
	loc.CoordToID[c] = id
	return a
}

// Шум радиуса 2 слышен на расстоянии 2 и не слышен на расстоянии 3.
func TestNoiseRadius(t *testing.T) {
	loc := newLocation(openTiles(8))
	src := placeActor(loc, 0, domain.RaceRat, hex.Origin)
	near := placeActor(loc, 1, domain.RaceHuman, hex.Coord{Q: 2, R: 0})
	far := placeActor(loc, 2, domain.RaceHuman, hex.Coord{Q: 3, R: 0})

	src.NoiseMakes(2)
	RecomputeNoise(loc)

	if !near.Hears(hex.Origin) {
		t.Error("Actor at distance 2 must hear noise of radius 2")
	}
	if far.Hears(hex.Origin) {
		t.Error("Actor at distance 3 must not hear noise of radius 2")
	}
	if src.Hears(hex.Origin) {
		t.Error("Source must not hear itself")
	}

	// Слышен и вид источника.
	if n, ok := near.Heard[hex.Origin]; !ok || n.Race != domain.RaceRat {
		t.Errorf("Heard record must carry the source race, got %+v", n)
	}
}

// Стены шум не глушат.
func TestNoiseIgnoresWalls(t *testing.T) {
	tiles := openTiles(8)
	tiles[hex.Coord{Q: 1, R: 0}] = domain.Tile{Kind: domain.TileWall}
	loc := newLocation(tiles)

	src := placeActor(loc, 0, domain.RaceGoblin, hex.Origin)
	listener := placeActor(loc, 1, domain.RaceHuman, hex.Coord{Q: 2, R: 0})

	src.NoiseMakes(3)
	RecomputeNoise(loc)

	if !listener.Hears(hex.Origin) {
		t.Error("Noise must pass through walls")
	}
}

// Карта звуков не накапливается между пересчетами.
func TestNoiseResetsEachTick(t *testing.T) {
	loc := newLocation(openTiles(8))
	src := placeActor(loc, 0, domain.RaceRat, hex.Origin)
	listener := placeActor(loc, 1, domain.RaceHuman, hex.Coord{Q: 1, R: 0})

	src.NoiseMakes(2)
	RecomputeNoise(loc)
	if !listener.Hears(hex.Origin) {
		t.Fatal("Listener must hear the first emission")
	}

	src.NoiseEmission = 0
	RecomputeNoise(loc)
	if listener.Hears(hex.Origin) {
		t.Error("Old noise must vanish after recompute without emission")
	}
}
