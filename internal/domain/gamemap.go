package domain

import "hexcrawl-server/internal/hex"

// wallTile возвращается для координат за пределами сгенерированной карты.
var wallTile = Tile{Kind: TileWall}

// GameMap - тотальная функция Coord -> Tile. Отсутствующая клетка считается
// стеной: так граница уровня не требует явной обводки.
//
// Карта неизменяемая. Точечные правки (открытие двери) не копируют всю
// карту, а ложатся в маленький слой patches поверх разделяемой базы:
// читатели старой версии продолжают видеть согласованный снимок.
type GameMap struct {
	base    map[hex.Coord]Tile
	patches map[hex.Coord]Tile
	version uint64
}

// NewGameMap строит карту поверх сгенерированного набора клеток.
// Слайс base далее принадлежит карте, менять его снаружи нельзя.
func NewGameMap(base map[hex.Coord]Tile) *GameMap {
	return &GameMap{base: base}
}

// At возвращает клетку по координате (стена, если клетки нет).
func (m *GameMap) At(c hex.Coord) Tile {
	if t, ok := m.patches[c]; ok {
		return t
	}
	if t, ok := m.base[c]; ok {
		return t
	}
	return wallTile
}

// WithTile возвращает новую версию карты с заменённой клеткой.
// База разделяется между версиями, копируется только слой правок.
func (m *GameMap) WithTile(c hex.Coord, t Tile) *GameMap {
	patches := make(map[hex.Coord]Tile, len(m.patches)+1)
	for k, v := range m.patches {
		patches[k] = v
	}
	patches[c] = t
	return &GameMap{base: m.base, patches: patches, version: m.version + 1}
}

// Version растет при каждой правке; удобно для отладки и кэширования.
func (m *GameMap) Version() uint64 {
	return m.version
}

// Len возвращает число явно заданных клеток.
func (m *GameMap) Len() int {
	return len(m.base)
}

// ForEach перебирает все явно заданные клетки (с учётом правок).
// Порядок обхода не определён; вызывающий код не должен на него опираться.
func (m *GameMap) ForEach(fn func(hex.Coord, Tile)) {
	for c := range m.base {
		fn(c, m.At(c))
	}
	for c, t := range m.patches {
		if _, inBase := m.base[c]; !inBase {
			fn(c, t)
		}
	}
}
