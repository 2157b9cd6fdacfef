package domain

import "hexcrawl-server/internal/hex"

// TileKind - закрытый набор видов клеток.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
	TileDoor
	TileTree
)

// Feature - дополнительный объект на клетке (лестница вниз и т.п.).
type Feature uint8

const (
	FeatureNone Feature = iota
	FeatureStairs
)

// Area - именованная зона уровня (комната, пещера).
// Открытие зоны засчитывается один раз - по её опорной координате.
type Area struct {
	Center hex.Coord `json:"center"`
	Name   string    `json:"name"`
}

// Tile - статическое описание клетки.
// Мутация только через GameMap.WithTile (см. ниже).
type Tile struct {
	Kind     TileKind `json:"kind"`
	DoorOpen bool     `json:"doorOpen,omitempty"`
	Light    int      `json:"light,omitempty"`
	Feature  Feature  `json:"feature,omitempty"`
	Area     *Area    `json:"area,omitempty"`
}

// Opaqueness - стоимость прохождения луча (зрения или света) через клетку.
// Пустая клетка гасит луч на 1, дерево - на 8, стена и закрытая дверь
// обрывают его сразу. Порог "непрозрачности" для правил видимости - >10.
func (t Tile) Opaqueness() int {
	switch t.Kind {
	case TileWall:
		return 1000
	case TileDoor:
		if t.DoorOpen {
			return 1
		}
		return 1000
	case TileTree:
		return 8
	default:
		return 1
	}
}

// IsOpaque сообщает, считается ли клетка непрозрачной для правил
// подсветки стен (фильтр видимости, шаг 2).
func (t Tile) IsOpaque() bool {
	return t.Opaqueness() > 10
}

// IsPassable сообщает, можно ли стоять на клетке.
func (t Tile) IsPassable() bool {
	switch t.Kind {
	case TileEmpty:
		return true
	case TileDoor:
		return t.DoorOpen
	default:
		return false
	}
}
