package dungeon

import (
	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// Arena строит открытую шестиугольную площадку заданного радиуса без
// декораций и монстров. Используется тестами движка и как "песочница"
// для ручной отладки клиентов.
func Arena(radius int) *domain.GameMap {
	tiles := map[hex.Coord]domain.Tile{}
	hex.Origin.ForEachInRange(radius, func(c hex.Coord) {
		tiles[c] = domain.Tile{Kind: domain.TileEmpty}
	})
	return domain.NewGameMap(tiles)
}

// ArenaGenerator оборачивает Arena в сигнатуру генератора уровней:
// прогон без процедурной пещеры, каждый ярус - та же пустая площадка.
func ArenaGenerator(radius int) func(level int, levelSeed int64, origin hex.Coord, targetTileCount int) (*domain.GameMap, []*domain.Actor, map[hex.Coord]*domain.Item) {
	return func(int, int64, hex.Coord, int) (*domain.GameMap, []*domain.Actor, map[hex.Coord]*domain.Item) {
		return Arena(radius), nil, map[hex.Coord]*domain.Item{}
	}
}
