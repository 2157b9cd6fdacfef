package systems

import "hexcrawl-server/internal/hex"

// Traverser - поиск в ширину по гексагональной сетке, параметризованный
// предикатами проходимости и цели.
//
// Клетки раскрываются в порядке неубывания расстояния от старта; при
// равном расстоянии - в каноническом порядке направлений. Стартовая
// клетка раскрывается всегда, независимо от isPassable.
type Traverser struct {
	isPassable func(hex.Coord) bool
	isGoal     func(hex.Coord) bool
	start      hex.Coord

	queue   []hex.Coord
	visited map[hex.Coord]bool
	prev    map[hex.Coord]hex.Coord
}

// NewTraverser готовит обход из стартовой клетки.
func NewTraverser(isPassable, isGoal func(hex.Coord) bool, start hex.Coord) *Traverser {
	return &Traverser{
		isPassable: isPassable,
		isGoal:     isGoal,
		start:      start,
		queue:      []hex.Coord{start},
		visited:    map[hex.Coord]bool{start: true},
		prev:       map[hex.Coord]hex.Coord{},
	}
}

// Find возвращает первую клетку-цель в порядке раскрытия (ok=false, если
// в достижимой области цели нет). Повторный вызов продолжает обход и
// ищет следующую цель.
func (t *Traverser) Find() (hex.Coord, bool) {
	for len(t.queue) > 0 {
		cur := t.queue[0]
		t.queue = t.queue[1:]

		if cur != t.start && !t.isPassable(cur) {
			continue
		}

		for _, n := range cur.Neighbors() {
			if t.visited[n] {
				continue
			}
			t.visited[n] = true
			t.prev[n] = cur
			t.queue = append(t.queue, n)
		}

		if t.isGoal(cur) {
			return cur, true
		}
	}
	return hex.Coord{}, false
}

// Backtrace возвращает предшественника клетки на кратчайшем пути от
// старта (ok=false для старта и непосещенных клеток).
func (t *Traverser) Backtrace(c hex.Coord) (hex.Coord, bool) {
	p, ok := t.prev[c]
	return p, ok
}

// BacktraceLast возвращает первый шаг от старта на кратчайшем пути к c:
// клетку, предшественник которой - сам старт.
func (t *Traverser) BacktraceLast(c hex.Coord) (hex.Coord, bool) {
	cur := c
	for {
		p, ok := t.prev[cur]
		if !ok {
			return hex.Coord{}, false
		}
		if p == t.start {
			return cur, true
		}
		cur = p
	}
}
