package hex

import "testing"

func TestRotate(t *testing.T) {
	if got := East.Rotate(Right); got != SouthEast {
		t.Errorf("East turned right must be SouthEast, got %v", got)
	}
	if got := East.Rotate(Left); got != NorthEast {
		t.Errorf("East turned left must be NorthEast, got %v", got)
	}
	if got := NorthEast.Rotate(Back); got != SouthWest {
		t.Errorf("NorthEast turned back must be SouthWest, got %v", got)
	}
	for _, d := range Directions {
		if d.Rotate(Forward) != d {
			t.Errorf("Forward rotation must be identity for %v", d)
		}
	}
}

func TestAngleToInvertsRotate(t *testing.T) {
	for _, d := range Directions {
		for a := Forward; a <= Left; a++ {
			if got := d.Rotate(a).AngleTo(d); got != a {
				t.Errorf("AngleTo must invert Rotate: %v rotated by %v gives angle %v", d, a, got)
			}
		}
	}
}

func TestAngleInvert(t *testing.T) {
	cases := []struct{ a, want Angle }{
		{Forward, Forward},
		{Right, Left},
		{Left, Right},
		{Back, Back},
		{RightBack, LeftBack},
		{LeftBack, RightBack},
	}
	for _, c := range cases {
		if got := c.a.Invert(); got != c.want {
			t.Errorf("Invert(%v) = %v, want %v", c.a, got, c.want)
		}
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	for _, d := range Directions {
		n := Origin.Add(d.Delta())
		if got, ok := Origin.DirectionTo(n); !ok || got != d {
			t.Errorf("Neighbor in direction %v must resolve back to it, got %v", d, got)
		}
	}
}

func TestPositionHead(t *testing.T) {
	p := NewPosition(Coord{2, 1}, West)
	if got := p.Head(); got != (Coord{1, 1}) {
		t.Errorf("Head must be the cell directly ahead, got %v", got)
	}
}
