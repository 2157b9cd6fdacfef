package systems

import (
	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// RecomputeNoise пересчитывает карту звуков тика.
//
// Шум не заглушается стенами: каждый живой актор с излучением > 0 слышен
// всем остальным живым в гексагональном радиусе излучения. Записи Heard
// не накапливаются между тиками - карта собирается заново.
func RecomputeNoise(loc *domain.Location) {
	alive := loc.AliveIDs()

	for _, id := range alive {
		loc.ActorsByID[id].Heard = domain.NoiseMap{}
	}

	for _, id := range alive {
		source := loc.ActorsByID[id]
		emission := source.NoiseEmission
		if emission <= 0 {
			continue
		}

		noise := domain.Noise{Kind: domain.NoiseCreature, Race: source.Race}
		srcCoord := source.Pos.Coord

		srcCoord.ForEachInRange(emission, func(c hex.Coord) {
			targetID, ok := loc.CoordToID[c]
			if !ok || targetID == id {
				return
			}
			loc.ActorsByID[targetID].NoiseHears(srcCoord, noise)
		})
	}
}
