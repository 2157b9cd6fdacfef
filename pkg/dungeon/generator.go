package dungeon

import (
	"fmt"
	"math/rand"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// Константы генерации
const (
	// Плотность декораций: одна штука на столько клеток пола.
	tilesPerTree  = 25
	tilesPerDoor  = 40
	tilesPerTorch = 30
	tilesPerItem  = 40
	tilesPerMob   = 30

	// Сила настенных факелов.
	torchLight = 8

	// Радиус именованной зоны вокруг её опорной клетки.
	areaRadius = 5
)

var areaNames = []string{
	"Сырой грот",
	"Костяной зал",
	"Крысиные ходы",
	"Заброшенная штольня",
	"Гнилой тупик",
	"Мшистая пещера",
}

// Generate создает новый уровень: карту, монстров и предметы на полу.
// Полностью детерминирован от сида: один и тот же сид дает одну и ту же
// раскладку от клеток до последнего зелья.
func Generate(level int, levelSeed int64, origin hex.Coord, targetTileCount int) (*domain.GameMap, []*domain.Actor, map[hex.Coord]*domain.Item) {
	rng := rand.New(rand.NewSource(levelSeed))

	// 1. Прокопка пещеры.
	tiles := carve(rng, origin, targetTileCount)
	coords := sortedCoords(tiles)

	// 2. Декорации. Вокруг origin оставляем чистый пятачок: стартовая
	// клетка игрока не должна оказаться деревом или дверью.
	for _, c := range coords {
		if origin.Distance(c) <= 2 {
			continue
		}
		switch {
		case rng.Intn(tilesPerTree) == 0:
			tiles[c] = domain.Tile{Kind: domain.TileTree}

		case rng.Intn(tilesPerDoor) == 0 && wallNeighbors(tiles, c) >= 2:
			// Дверь имеет смысл только в узости, не посреди зала.
			tiles[c] = domain.Tile{Kind: domain.TileDoor}

		case rng.Intn(tilesPerTorch) == 0:
			t := tiles[c]
			t.Light = torchLight
			tiles[c] = t
		}
	}

	// 3. Лестница вниз - в самой дальней от входа клетке.
	stairs := farthestFrom(tiles, origin)
	st := tiles[stairs]
	st.Kind = domain.TileEmpty
	st.Feature = domain.FeatureStairs
	tiles[stairs] = st

	// 4. Именованные зоны.
	for i, name := range areaNames {
		if rng.Intn(2) == 0 && i > 0 {
			continue
		}
		center := coords[rng.Intn(len(coords))]
		area := &domain.Area{
			Center: center,
			Name:   fmt.Sprintf("%s (ярус %d)", name, level+1),
		}
		for _, c := range coords {
			if center.Distance(c) <= areaRadius {
				t := tiles[c]
				t.Area = area
				tiles[c] = t
			}
		}
	}

	// 5. Предметы на полу.
	items := map[hex.Coord]*domain.Item{}
	for i := 0; i < targetTileCount/tilesPerItem; i++ {
		c := coords[rng.Intn(len(coords))]
		if !tiles[c].IsPassable() || items[c] != nil || origin.Distance(c) <= 2 {
			continue
		}
		items[c] = rollLoot(rng).Spawn()
	}

	// 6. Монстры. Не ближе пяти клеток к входу: игроку дают осмотреться.
	var mobs []*domain.Actor
	taken := map[hex.Coord]bool{}
	for i := 0; i < targetTileCount/tilesPerMob; i++ {
		c := coords[rng.Intn(len(coords))]
		if !tiles[c].IsPassable() || taken[c] || origin.Distance(c) <= 5 {
			continue
		}
		taken[c] = true
		pos := hex.NewPosition(c, hex.Directions[rng.Intn(6)])
		mobs = append(mobs, rollMob(rng, level, pos))
	}

	return domain.NewGameMap(tiles), mobs, items
}
