package systems

import (
	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// RecomputeLightMap пересчитывает мировую карту света с нуля.
//
// Каждый светящийся источник (клетка карты или актор) обсвечивает
// окрестность той же трассировкой лучей, что и зрение; интенсивность в
// клетке - максимум по всем дотянувшимся источникам, не сумма. Пересчёт
// детерминирован и идемпотентен: от порядка источников результат не
// зависит, повторный вызов на неизменном мире дает побитово ту же карту.
func RecomputeLightMap(loc *domain.Location) {
	light := domain.LightMap{}

	cast := func(source hex.Coord, power int) {
		castRays(source, power,
			func(c hex.Coord) int {
				if c == source {
					return 0
				}
				return loc.Map.At(c).Opaqueness()
			},
			nil,
			func(c hex.Coord, remaining int) {
				if remaining > light[c] {
					light[c] = remaining
				}
			})
	}

	loc.Map.ForEach(func(c hex.Coord, t domain.Tile) {
		if t.Light > 0 {
			cast(c, t.Light)
		}
	})

	for _, id := range loc.AliveIDs() {
		a := loc.ActorsByID[id]
		if a.LightEmission > 0 {
			cast(a.Pos.Coord, a.LightEmission)
		}
	}

	loc.Light = light
}
