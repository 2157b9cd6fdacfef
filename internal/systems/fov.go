package systems

import (
	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// losWedgeAngles - относительные углы, попадающие в поле зрения:
// актор видит вперед и по 90 градусов в обе стороны от направления
// взгляда, но не за спину.
var losWedgeAngles = map[hex.Angle]bool{
	hex.Forward: true,
	hex.Left:    true,
	hex.Right:   true,
}

// AccumulateLOS досыпает в TempLOS актора прямую видимость из его
// текущей позиции. Вызывается при каждом под-перемещении в течение
// тика: актор "видел все, мимо чего прошел".
func AccumulateLOS(a *domain.Actor, loc *domain.Location) {
	pos := a.Pos
	vision := a.Stats.Base.Vision

	castRays(pos.Coord, vision,
		func(c hex.Coord) int {
			if c == pos.Coord {
				return 0
			}
			return loc.Map.At(c).Opaqueness()
		},
		func(c hex.Coord) bool {
			return inLOSWedge(pos, c)
		},
		func(c hex.Coord, _ int) {
			a.TempLOS[c] = true
		})

	// Клетка перед носом в LOS всегда, даже со зрением 0.
	a.TempLOS[pos.Head()] = true
}

// inLOSWedge: лежит ли клетка в поле зрения позиции.
func inLOSWedge(pos hex.Position, c hex.Coord) bool {
	for _, d := range pos.Coord.DirectionsTo(c) {
		if losWedgeAngles[d.AngleTo(pos.Dir)] {
			return true
		}
	}
	return false
}

// LOSToVisible применяет фильтр видимости (шаг 2 восприятия): клетка из
// сырого LOS видима, если она освещена, в пределах инфразрения, прямо
// перед актором, либо это освещенная с нашей стороны непрозрачная клетка.
func LOSToVisible(a *domain.Actor, loc *domain.Location, los domain.Visibility) domain.Visibility {
	visible := domain.Visibility{}

	for c := range los {
		switch {
		case loc.LightAt(c) > 0:
			visible[c] = true
		case a.Pos.Coord.Distance(c) <= a.Stats.Base.Infravision:
			visible[c] = true
		case c == a.Head():
			visible[c] = true
		case loc.Map.At(c).IsOpaque() && loc.At(c).LightAsSeenBy(a) > 0:
			visible[c] = true
		}
	}
	return visible
}

// RecomputePerception - полный пересчёт восприятия актора (шаги 1-3).
// Вызывается в POST_OWN, если позиция за тик менялась.
func RecomputePerception(a *domain.Actor, loc *domain.Location) {
	// Накопленный за тик LOS (включая промежуточные позиции)
	// финализируется с фильтром света.
	totalVisible := LOSToVisible(a, loc, a.TempLOS)

	// LOS строго из конечной позиции - для мгновенных боевых проверок.
	a.TempLOS = domain.Visibility{}
	AccumulateLOS(a, loc)
	visible := LOSToVisible(a, loc, a.TempLOS)

	// Слияние с памятью: новое попадает в Known и в дельту Discovered.
	for _, set := range []domain.Visibility{totalVisible, visible} {
		for c := range set {
			if !a.Known[c] {
				a.Known[c] = true
				a.Discovered[c] = true
			}
		}
	}

	// Открытие зон: одно событие на зону, по опорной координате.
	for c := range a.Discovered {
		area := loc.Map.At(c).Area
		if area == nil {
			continue
		}
		if !a.KnownAreas[area.Center] {
			a.KnownAreas[area.Center] = true
			a.DiscoveredAreas[area.Center] = true
		}
	}

	a.InLOS = domain.Visibility{}
	for c := range a.TempLOS {
		a.InLOS[c] = true
	}
	a.Visible = visible
}
