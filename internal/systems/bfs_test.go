package systems

import (
	"testing"

	"hexcrawl-server/internal/hex"
)

// Поиск находит ближайшую цель и дает первый шаг пути.
func TestTraverserFindAndBacktrace(t *testing.T) {
	goal := hex.Coord{Q: 4, R: 0}
	tr := NewTraverser(
		func(hex.Coord) bool { return true },
		func(c hex.Coord) bool { return c == goal },
		hex.Origin,
	)

	found, ok := tr.Find()
	if !ok || found != goal {
		t.Fatalf("Expected to find %v, got %v (ok=%v)", goal, found, ok)
	}

	first, ok := tr.BacktraceLast(goal)
	if !ok {
		t.Fatal("BacktraceLast failed for found goal")
	}
	if hex.Origin.Distance(first) != 1 {
		t.Errorf("First step %v must be adjacent to start", first)
	}
	if first.Distance(goal) != 3 {
		t.Errorf("First step %v must move toward the goal", first)
	}

	prev, ok := tr.Backtrace(goal)
	if !ok || prev.Distance(goal) != 1 {
		t.Errorf("Backtrace of goal must be its path predecessor, got %v", prev)
	}
}

// Недостижимая цель за сплошной стеной не находится.
func TestTraverserBlocked(t *testing.T) {
	// Кольцо радиуса 2 вокруг старта непроходимо.
	tr := NewTraverser(
		func(c hex.Coord) bool { return hex.Origin.Distance(c) != 2 },
		func(c hex.Coord) bool { return hex.Origin.Distance(c) == 4 },
		hex.Origin,
	)

	if found, ok := tr.Find(); ok {
		t.Errorf("Goal behind a solid ring must be unreachable, found %v", found)
	}
}

// Стартовая клетка раскрывается даже когда сама непроходима.
func TestTraverserStartAlwaysExpands(t *testing.T) {
	goal := hex.Coord{Q: 1, R: 0}
	tr := NewTraverser(
		func(c hex.Coord) bool { return c != hex.Origin },
		func(c hex.Coord) bool { return c == goal },
		hex.Origin,
	)

	if found, ok := tr.Find(); !ok || found != goal {
		t.Errorf("Goal adjacent to impassable start must be found, got %v (ok=%v)", found, ok)
	}
}

// Повторный Find продолжает обход и находит следующую цель.
func TestTraverserFindNext(t *testing.T) {
	tr := NewTraverser(
		func(hex.Coord) bool { return true },
		func(c hex.Coord) bool { return c.R == 0 && (c.Q == 2 || c.Q == 3) },
		hex.Origin,
	)

	first, ok := tr.Find()
	if !ok || first.Distance(hex.Origin) != 2 {
		t.Fatalf("First goal must be the nearer one, got %v", first)
	}
	second, ok := tr.Find()
	if !ok || second.Distance(hex.Origin) != 3 {
		t.Fatalf("Second goal must be the farther one, got %v", second)
	}
}
