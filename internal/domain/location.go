package domain

import (
	"sort"

	"hexcrawl-server/internal/hex"
)

// LightMap - интенсивность света по координатам. Отсутствие ключа = темнота.
type LightMap map[hex.Coord]int

// Location - агрегат состояния уровня: карта, акторы с индексами,
// предметы на полу, карта света, счетчики.
//
// Мутируется строго последовательно одним драйвером. Актор берется из
// таблицы по указателю и правится на месте; таблица никогда не видит
// двух владельцев одного актора одновременно.
type Location struct {
	ActorsByID map[ActorID]*Actor
	CoordToID  map[hex.Coord]ActorID
	DeadIDs    map[ActorID]bool
	Counter    ActorID

	Map   *GameMap
	Items map[hex.Coord]*Item

	Light LightMap
	Level int
	Turn  uint64

	playerID *ActorID
}

// NewLocation собирает пустой уровень поверх готовой карты и предметов
// (результат границы генератора).
func NewLocation(m *GameMap, items map[hex.Coord]*Item, level int) *Location {
	if items == nil {
		items = map[hex.Coord]*Item{}
	}
	return &Location{
		ActorsByID: map[ActorID]*Actor{},
		CoordToID:  map[hex.Coord]ActorID{},
		DeadIDs:    map[ActorID]bool{},
		Map:        m,
		Items:      items,
		Light:      LightMap{},
		Level:      level,
	}
}

// PlayerID возвращает ID актора-игрока (ok=false, если игрок не заспавнен).
func (l *Location) PlayerID() (ActorID, bool) {
	if l.playerID == nil {
		return 0, false
	}
	return *l.playerID, true
}

// SetPlayerID фиксирует ID игрока после спавна.
func (l *Location) SetPlayerID(id ActorID) {
	l.playerID = &id
}

// Player возвращает актора-игрока (nil, если его нет).
func (l *Location) Player() *Actor {
	if l.playerID == nil {
		return nil
	}
	return l.ActorsByID[*l.playerID]
}

// ActorIDs возвращает все ID в возрастающем порядке (детерминизм обхода).
func (l *Location) ActorIDs() []ActorID {
	ids := make([]ActorID, 0, len(l.ActorsByID))
	for id := range l.ActorsByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AliveIDs возвращает ID живых акторов в возрастающем порядке.
func (l *Location) AliveIDs() []ActorID {
	ids := make([]ActorID, 0, len(l.ActorsByID))
	for id, a := range l.ActorsByID {
		if !a.IsDead() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// At возвращает вид на одну клетку уровня.
func (l *Location) At(c hex.Coord) At {
	return At{coord: c, loc: l}
}

// LightAt - интенсивность света в клетке.
func (l *Location) LightAt(c hex.Coord) int {
	return l.Light[c]
}

// At - read-only вид на клетку (клетка + ссылка на уровень).
type At struct {
	coord hex.Coord
	loc   *Location
}

// Tile возвращает клетку карты (за границей - стена).
func (at At) Tile() Tile {
	return at.loc.Map.At(at.coord)
}

// Actor возвращает живого актора на клетке (nil, если пусто).
func (at At) Actor() *Actor {
	id, ok := at.loc.CoordToID[at.coord]
	if !ok {
		return nil
	}
	return at.loc.ActorsByID[id]
}

// Item возвращает предмет на полу клетки (nil, если пусто).
func (at At) Item() *Item {
	return at.loc.Items[at.coord]
}

// IsOccupied: стоит ли на клетке живой актор.
func (at At) IsOccupied() bool {
	_, ok := at.loc.CoordToID[at.coord]
	return ok
}

// IsPassable: по клетке можно пройти и она не занята.
func (at At) IsPassable() bool {
	return !at.IsOccupied() && at.Tile().IsPassable()
}

// Light - собственная освещенность клетки.
func (at At) Light() int {
	return at.loc.Light[at.coord]
}

// LightAsSeenBy - освещенность клетки с точки зрения наблюдателя.
// Прозрачная клетка светится сама; непрозрачная (стена) выглядит
// освещенной, если освещена соседняя прозрачная клетка на пути к
// наблюдателю (свет "ложится" на стену с его стороны).
func (at At) LightAsSeenBy(observer *Actor) int {
	if !at.Tile().IsOpaque() {
		return at.loc.Light[at.coord]
	}

	best := 0
	for _, dir := range observer.Pos.Coord.DirectionsTo(at.coord) {
		side := at.coord.Sub(dir.Delta())
		if at.loc.Map.At(side).IsOpaque() {
			continue
		}
		if v := at.loc.Light[side]; v > best {
			best = v
		}
	}
	return best
}
