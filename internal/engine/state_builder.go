package engine

import (
	"fmt"
	"sort"
	"time"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
	"hexcrawl-server/pkg/api"
)

var tileKindNames = map[domain.TileKind]string{
	domain.TileEmpty: "empty",
	domain.TileWall:  "wall",
	domain.TileDoor:  "door",
	domain.TileTree:  "tree",
}

var itemKindNames = map[domain.ItemKind]string{
	domain.ItemWeapon:     "weapon",
	domain.ItemArmor:      "armor",
	domain.ItemConsumable: "consumable",
}

var slotNames = map[domain.Slot]string{
	domain.SlotHead:  "head",
	domain.SlotBody:  "body",
	domain.SlotCloak: "cloak",
	domain.SlotFeet:  "feet",
	domain.SlotLHand: "lhand",
	domain.SlotRHand: "rhand",
	domain.SlotQuick: "quick",
}

// BuildStateFor создает персональный "снимок" мира для наблюдателя.
// В снимок попадает только то, что наблюдатель видит, помнит или
// слышал за прошлый тик: сервер никогда не присылает клиенту знание,
// которого у актора нет. ID наблюдателя передается явно: мертвый актор
// уже удален из таблиц уровня, и обратного поиска для него нет.
func (inst *Instance) BuildStateFor(observerID domain.ActorID, observer *domain.Actor) *api.ServerResponse {
	loc := inst.Loc

	resp := &api.ServerResponse{
		Type:  "UPDATE",
		Turn:  loc.Turn,
		Level: loc.Level,
		Me:    actorView(observerID, observer, observer),
	}
	if observer.IsDead() {
		resp.Type = "DEAD"
	}

	// 1. Карта: известные тайлы, видимые помечаются отдельно.
	// Порядок детерминирован для воспроизводимости снимков в тестах.
	coords := make([]struct{ q, r int }, 0, len(observer.Known))
	for c := range observer.Known {
		coords = append(coords, struct{ q, r int }{c.Q, c.R})
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].q != coords[j].q {
			return coords[i].q < coords[j].q
		}
		return coords[i].r < coords[j].r
	})
	for _, qc := range coords {
		c := hex.Coord{Q: qc.q, R: qc.r}
		tile := loc.Map.At(c)
		tv := api.TileView{
			Q:         c.Q,
			R:         c.R,
			Kind:      tileKindNames[tile.Kind],
			DoorOpen:  tile.DoorOpen,
			Stairs:    tile.Feature == domain.FeatureStairs,
			Light:     loc.LightAt(c),
			IsVisible: observer.Sees(c),
			IsKnown:   true,
		}
		if tile.Area != nil && observer.KnownAreas[tile.Area.Center] {
			tv.Area = tile.Area.Name
		}
		resp.Map = append(resp.Map, tv)

		// Предметы на полу показываем только на видимых клетках.
		if observer.Sees(c) {
			if it := loc.At(c).Item(); it != nil {
				resp.Items = append(resp.Items, api.ItemView{
					Q:    c.Q,
					R:    c.R,
					Name: it.Description(),
					Kind: itemKindNames[it.Kind],
				})
			}
		}
	}

	// 2. Видимые акторы (кроме себя). Актор попадает в снимок и если его
	// видели на прежней позиции в этом тике - иначе убегающий из поля
	// зрения противник исчезал бы без последнего кадра. Чужие статы
	// клиенту не показываем.
	for _, id := range loc.AliveIDs() {
		other := loc.ActorsByID[id]
		if other == observer || !observer.CouldHaveSeen(other) {
			continue
		}
		av := actorView(id, other, observer)
		av.Stats = nil
		resp.Actors = append(resp.Actors, *av)
	}

	// 3. Шумы прошлого тика.
	for c, n := range observer.Heard {
		resp.Noises = append(resp.Noises, api.NoiseView{
			Q:    c.Q,
			R:    c.R,
			Race: n.Race.Description(),
		})
	}
	sort.Slice(resp.Noises, func(i, j int) bool {
		if resp.Noises[i].Q != resp.Noises[j].Q {
			return resp.Noises[i].Q < resp.Noises[j].Q
		}
		return resp.Noises[i].R < resp.Noises[j].R
	})

	// 4. Боевой лог этого тика.
	resp.Logs = combatLogs(observer)

	return resp
}

// actorView собирает DTO актора. Статы заполняются всегда, обрезка
// для чужих акторов - на совести вызывающего.
func actorView(id domain.ActorID, a *domain.Actor, observer *domain.Actor) *api.ActorView {
	av := &api.ActorView{
		ID:   uint32(id),
		Race: a.Race.Description(),
		Q:    a.Pos.Coord.Q,
		R:    a.Pos.Coord.R,
		Dir:  a.Pos.Dir.String(),
		Stats: &api.StatsView{
			HP:    a.HP,
			MaxHP: a.Stats.Base.MaxHP,
			MP:    a.MP,
			MaxMP: a.Stats.Base.MaxMP,
			SP:    a.SP,
			MaxSP: a.Stats.Base.MaxSP,

			Str: a.Stats.Base.Str,
			Dex: a.Stats.Base.Dex,
			Int: a.Stats.Base.Int,
			AC:  a.Stats.Base.AC,
			EV:  a.Stats.Base.EV,

			ActionCooldown: a.ActionCooldown,
			IsDead:         a.IsDead(),
		},
	}

	if a == observer {
		letters := make([]byte, 0, len(a.ItemsBackpack))
		for ch := range a.ItemsBackpack {
			letters = append(letters, ch)
		}
		sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
		for _, ch := range letters {
			it := a.ItemsBackpack[ch]
			av.Backpack = append(av.Backpack, api.SlottedItemView{
				Letter: string(ch),
				Name:   it.Description(),
				Kind:   itemKindNames[it.Kind],
			})
		}

		slots := make([]domain.Slot, 0, len(a.ItemsEquipped))
		for s := range a.ItemsEquipped {
			slots = append(slots, s)
		}
		sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
		for _, s := range slots {
			sl := a.ItemsEquipped[s]
			av.Equipment = append(av.Equipment, api.SlottedItemView{
				Letter: slotNames[s],
				Name:   sl.Item.Description(),
				Kind:   itemKindNames[sl.Item.Kind],
			})
		}
	}
	return av
}

// combatLogs переводит структурированные записи об ударах этого тика
// в строки для клиента.
func combatLogs(a *domain.Actor) []api.LogEntry {
	now := time.Now().UnixMilli()
	logs := make([]api.LogEntry, 0, len(a.WasAttackedBy)+len(a.DidAttack))

	for _, ar := range a.WasAttackedBy {
		var text string
		switch {
		case !ar.Success:
			text = fmt.Sprintf("%s промахивается по вам.", ar.Who)
		case ar.Behind:
			text = fmt.Sprintf("%s бьет вас в спину (%d урона).", ar.Who, ar.Dmg)
		default:
			text = fmt.Sprintf("%s бьет вас (%d урона).", ar.Who, ar.Dmg)
		}
		logs = append(logs, api.LogEntry{Text: text, Type: "COMBAT", Timestamp: now})
	}

	for _, ar := range a.DidAttack {
		var text string
		switch {
		case !ar.Success:
			text = fmt.Sprintf("Вы промахиваетесь по существу (%s).", ar.Who)
		case ar.Behind:
			text = fmt.Sprintf("Вы бьете существо (%s) в спину: %d урона.", ar.Who, ar.Dmg)
		default:
			text = fmt.Sprintf("Вы бьете существо (%s): %d урона.", ar.Who, ar.Dmg)
		}
		logs = append(logs, api.LogEntry{Text: text, Type: "COMBAT", Timestamp: now})
	}
	return logs
}
