package hex

// Position - пара (координата, направление взгляда).
type Position struct {
	Coord Coord     `json:"coord"`
	Dir   Direction `json:"dir"`
}

// NewPosition собирает позицию из координаты и направления.
func NewPosition(c Coord, d Direction) Position {
	return Position{Coord: c, Dir: d}
}

// Turned возвращает позицию, повернутую на угол a. Координата не меняется.
func (p Position) Turned(a Angle) Position {
	return Position{Coord: p.Coord, Dir: p.Dir.Rotate(a)}
}

// Shifted возвращает позицию, сдвинутую на вектор delta. Направление не меняется.
func (p Position) Shifted(delta Coord) Position {
	return Position{Coord: p.Coord.Add(delta), Dir: p.Dir}
}

// Head возвращает клетку прямо перед позицией.
func (p Position) Head() Coord {
	return p.Coord.Neighbor(p.Dir)
}
