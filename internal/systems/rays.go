package systems

import "hexcrawl-server/internal/hex"

// castRays - общий движок трассировки лучей для зрения и света.
//
// Из origin к каждой клетке в радиусе power проводится отрезок;
// луч стартует с силой power и, входя в очередную клетку, теряет её
// opaqueness (вход в origin бесплатный). Каждая достигнутая клетка
// сообщается в visit с остатком силы (не меньше нуля); луч, потерявший
// всю силу, дальше не идет. Одна клетка может быть посещена несколькими
// лучами - visit обязан сводить значения сам (максимум, объединение).
//
// Клетка, остановившая луч (стена), посещается с нулевым остатком:
// препятствие видно, но за ним луч не идет.
//
// accept фильтрует клетки-цели (nil = без фильтра).
func castRays(origin hex.Coord, power int, opaq func(hex.Coord) int, accept func(hex.Coord) bool, visit func(hex.Coord, int)) {
	if power <= 0 {
		return
	}

	if accept == nil || accept(origin) {
		visit(origin, power)
	}

	origin.ForEachInRange(power, func(target hex.Coord) {
		if target == origin {
			return
		}
		if accept != nil && !accept(target) {
			return
		}

		line := origin.LineTo(target)
		remaining := power
		for _, c := range line[1:] {
			remaining -= opaq(c)
			if remaining <= 0 {
				if c == target {
					visit(c, 0)
				}
				break
			}
			if c == target {
				visit(c, remaining)
			}
		}
	})
}
