package hex

// Coord - аксиальная координата гексагональной сетки.
// Ось Q растет на восток, ось R - на юго-восток.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Origin - начало координат (центр уровня).
var Origin = Coord{0, 0}

func (c Coord) Add(o Coord) Coord {
	return Coord{c.Q + o.Q, c.R + o.R}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{c.Q - o.Q, c.R - o.R}
}

// Neighbor возвращает соседнюю клетку в указанном направлении.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(d.Delta())
}

// Neighbors возвращает все 6 соседей в фиксированном порядке направлений.
// Порядок важен: от него зависит детерминизм BFS и трассировки лучей.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Neighbor(d)
	}
	return out
}

// Distance возвращает гексагональное расстояние (число шагов) до другой клетки.
func (c Coord) Distance(o Coord) int {
	dq := c.Q - o.Q
	dr := c.R - o.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// ForEachInRange вызывает fn для каждой клетки на расстоянии <= radius,
// включая саму клетку c. Порядок обхода фиксирован.
func (c Coord) ForEachInRange(radius int, fn func(Coord)) {
	for dq := -radius; dq <= radius; dq++ {
		lo := max(-radius, -dq-radius)
		hi := min(radius, -dq+radius)
		for dr := lo; dr <= hi; dr++ {
			fn(Coord{c.Q + dq, c.R + dr})
		}
	}
}

// LineTo возвращает клетки отрезка от c до to включительно.
// Кубическая интерполяция с малым сдвигом, чтобы граничные случаи
// разрешались всегда одинаково.
func (c Coord) LineTo(to Coord) []Coord {
	n := c.Distance(to)
	if n == 0 {
		return []Coord{c}
	}

	ax, az := float64(c.Q), float64(c.R)
	bx, bz := float64(to.Q), float64(to.R)
	ay, by := -ax-az, -bx-bz

	out := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := ax + (bx-ax)*t + 1e-6
		y := ay + (by-ay)*t + 2e-6
		z := az + (bz-az)*t - 3e-6
		out = append(out, roundCube(x, y, z))
	}
	return out
}

// DirectionTo возвращает первое (в порядке перечисления) направление,
// шаг в котором сокращает расстояние до цели. Для c == to возвращает
// (East, false).
func (c Coord) DirectionTo(to Coord) (Direction, bool) {
	if c == to {
		return East, false
	}
	dist := c.Distance(to)
	for _, d := range Directions {
		if c.Neighbor(d).Distance(to) < dist {
			return d, true
		}
	}
	// Недостижимо: хотя бы одно направление всегда сокращает расстояние.
	return East, false
}

// DirectionsTo возвращает все направления (1 или 2), шаг в которых
// сокращает расстояние до цели.
func (c Coord) DirectionsTo(to Coord) []Direction {
	if c == to {
		return nil
	}
	dist := c.Distance(to)
	var out []Direction
	for _, d := range Directions {
		if c.Neighbor(d).Distance(to) < dist {
			out = append(out, d)
		}
	}
	return out
}

func roundCube(x, y, z float64) Coord {
	rx, ry, rz := round(x), round(y), round(z)

	dx, dy, dz := absf(rx-x), absf(ry-y), absf(rz-z)
	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy > dz {
		// ry не участвует в аксиальном представлении
	} else {
		rz = -rx - ry
	}
	return Coord{int(rx), int(rz)}
}

func round(f float64) float64 {
	if f < 0 {
		return float64(int(f - 0.5))
	}
	return float64(int(f + 0.5))
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
