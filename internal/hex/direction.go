package hex

// Direction - одно из 6 единичных направлений гексагональной сетки.
// Порядок перечисления - по часовой стрелке, начиная с востока.
type Direction int

const (
	East Direction = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast
)

// Directions - все направления в каноническом порядке.
// Любой код, который перебирает соседей, обязан использовать именно его.
var Directions = [6]Direction{East, SouthEast, SouthWest, West, NorthWest, NorthEast}

var directionDeltas = [6]Coord{
	{1, 0},   // East
	{0, 1},   // SouthEast
	{-1, 1},  // SouthWest
	{-1, 0},  // West
	{0, -1},  // NorthWest
	{1, -1},  // NorthEast
}

var directionNames = [6]string{"E", "SE", "SW", "W", "NW", "NE"}

// Delta возвращает единичный вектор направления.
func (d Direction) Delta() Coord {
	return directionDeltas[d.norm()]
}

// Rotate поворачивает направление на относительный угол.
func (d Direction) Rotate(a Angle) Direction {
	return Direction((int(d) + int(a) + 6) % 6)
}

// AngleTo возвращает угол, на который надо повернуть o, чтобы получить d.
func (d Direction) AngleTo(o Direction) Angle {
	return Angle((int(d) - int(o) + 6) % 6)
}

func (d Direction) String() string {
	return directionNames[d.norm()]
}

func (d Direction) norm() int {
	return (int(d)%6 + 6) % 6
}

// Angle - относительный поворот. Складывается с Direction по модулю 6.
type Angle int

const (
	Forward Angle = iota
	Right
	RightBack
	Back
	LeftBack
	Left
)

var angleNames = [6]string{"Forward", "Right", "RightBack", "Back", "LeftBack", "Left"}

// Invert возвращает зеркальный угол (Right <-> Left и т.д.).
func (a Angle) Invert() Angle {
	return Angle((6 - int(a)) % 6)
}

func (a Angle) String() string {
	return angleNames[(int(a)%6+6)%6]
}
