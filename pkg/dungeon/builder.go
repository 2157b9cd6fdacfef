package dungeon

import (
	"math/rand"
	"sort"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// carve прокапывает targetTileCount клеток пола случайным блужданием
// от origin. Блуждание время от времени откатывается на уже прокопанную
// клетку, за счет этого пещера ветвится, а не тянется одной кишкой.
func carve(rng *rand.Rand, origin hex.Coord, targetTileCount int) map[hex.Coord]domain.Tile {
	tiles := map[hex.Coord]domain.Tile{
		origin: {Kind: domain.TileEmpty},
	}
	carved := []hex.Coord{origin}

	cur := origin
	for len(tiles) < targetTileCount {
		if rng.Intn(8) == 0 {
			// Откат в случайную прокопанную клетку - новая ветка.
			cur = carved[rng.Intn(len(carved))]
		}

		cur = cur.Neighbor(hex.Directions[rng.Intn(6)])
		if _, ok := tiles[cur]; ok {
			continue
		}
		tiles[cur] = domain.Tile{Kind: domain.TileEmpty}
		carved = append(carved, cur)
	}
	return tiles
}

// sortedCoords возвращает ключи карты в детерминированном порядке.
// Генерация обязана быть воспроизводимой от сида, а обход map в Go - нет.
func sortedCoords(tiles map[hex.Coord]domain.Tile) []hex.Coord {
	coords := make([]hex.Coord, 0, len(tiles))
	for c := range tiles {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Q != coords[j].Q {
			return coords[i].Q < coords[j].Q
		}
		return coords[i].R < coords[j].R
	})
	return coords
}

// wallNeighbors считает непрокопанных соседей клетки.
func wallNeighbors(tiles map[hex.Coord]domain.Tile, c hex.Coord) int {
	n := 0
	for _, nb := range c.Neighbors() {
		if _, ok := tiles[nb]; !ok {
			n++
		}
	}
	return n
}

// farthestFrom находит прокопанную клетку, максимально удаленную от origin.
// При равном расстоянии побеждает меньшая координата - для детерминизма.
func farthestFrom(tiles map[hex.Coord]domain.Tile, origin hex.Coord) hex.Coord {
	best := origin
	bestDist := -1
	for _, c := range sortedCoords(tiles) {
		if d := origin.Distance(c); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
