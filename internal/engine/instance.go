package engine

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
	"hexcrawl-server/internal/systems"
	"hexcrawl-server/pkg/logger"
)

// Generator - граница процедурной генерации уровня. Ядро считает
// результат непрозрачным начальным состоянием.
type Generator func(level int, levelSeed int64, origin hex.Coord, targetTileCount int) (*domain.GameMap, []*domain.Actor, map[hex.Coord]*domain.Item)

// Decision - решение одного актора на тик.
type Decision struct {
	ID     domain.ActorID
	Action domain.Action
}

// Instance - один запущенный уровень: Location плюс разрешение действий
// и оркестрация тика. Все мутации строго последовательны.
type Instance struct {
	Loc *domain.Location

	cfg Config
	gen Generator
	rng *rand.Rand
	log *logrus.Entry

	descendRequested bool
}

// NewInstance генерирует стартовый уровень и собирает инстанс.
// Сгенерированные акторы (монстры) спавнятся сразу.
func NewInstance(cfg Config, gen Generator) (*Instance, error) {
	in := &Instance{
		cfg: cfg,
		gen: gen,
		rng: rand.New(rand.NewSource(cfg.Seed)),
		log: logger.Log.WithField("component", "instance"),
	}
	if err := in.buildLevel(0); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *Instance) buildLevel(level int) error {
	m, actors, items := in.gen(level, in.cfg.Seed+int64(level), hex.Origin, in.cfg.TargetTileCount)
	in.Loc = domain.NewLocation(m, items, level)

	for _, a := range actors {
		if _, err := in.Spawn(a); err != nil {
			return fmt.Errorf("level %d: spawn generated actor: %w", level, err)
		}
	}

	in.log.WithFields(logrus.Fields{
		"level": level,
		"tiles": m.Len(),
		"mobs":  len(actors),
	}).Info("Level built.")
	return nil
}

// Spawn вводит актора в мир. Если целевая клетка занята, детерминированно
// откатываемся на ближайшую свободную проходимую клетку (BFS); ошибка
// только если свободных клеток нет вовсе.
func (in *Instance) Spawn(a *domain.Actor) (domain.ActorID, error) {
	loc := in.Loc
	coord := a.Pos.Coord

	if loc.At(coord).IsOccupied() || !loc.Map.At(coord).IsPassable() {
		bfs := systems.NewTraverser(
			func(c hex.Coord) bool { return loc.Map.At(c).IsPassable() },
			func(c hex.Coord) bool { return loc.At(c).IsPassable() },
			coord,
		)
		free, ok := bfs.Find()
		if !ok {
			return 0, fmt.Errorf("spawn at %v: no free tile reachable", coord)
		}
		in.log.WithFields(logrus.Fields{
			"wanted": coord,
			"got":    free,
		}).Warn("Spawn target occupied, relocated to nearest free tile.")
		a.Pos.Coord = free
		coord = free
	}

	in.preAnyPhase()

	id := loc.Counter
	loc.Counter++
	loc.CoordToID[coord] = id
	loc.ActorsByID[id] = a

	a.PreOwnTick()
	systems.RecomputePerception(a, loc)

	in.postAnyPhase()
	return id, nil
}

// SpawnPlayer спавнит актора-игрока и запоминает его ID.
func (in *Instance) SpawnPlayer(a *domain.Actor) (domain.ActorID, error) {
	a.SetPlayer()
	id, err := in.Spawn(a)
	if err != nil {
		return 0, err
	}
	in.Loc.SetPlayerID(id)
	return id, nil
}

// TurnOrder возвращает порядок применения решений: игрок первым, затем
// остальные живые в стабильном порядке, зафиксированном на начало тика.
func (in *Instance) TurnOrder() []domain.ActorID {
	alive := in.Loc.AliveIDs()
	playerID, hasPlayer := in.Loc.PlayerID()
	if !hasPlayer {
		return alive
	}

	order := make([]domain.ActorID, 0, len(alive))
	for _, id := range alive {
		if id == playerID {
			order = append(order, id)
			break
		}
	}
	for _, id := range alive {
		if id != playerID {
			order = append(order, id)
		}
	}
	return order
}

// Tick выполняет один игровой тик над собранными решениями:
// PRE_ANY -> по порядку (PRE_OWN, ACT, POST_OWN) -> POST_ANY.
// Решение для несуществующего или уже выметенного актора - фатальная
// ошибка программирования, не игровая ситуация.
func (in *Instance) Tick(decisions []Decision) error {
	loc := in.Loc

	in.preAnyPhase()

	for _, d := range decisions {
		a, ok := loc.ActorsByID[d.ID]
		if !ok || loc.DeadIDs[d.ID] {
			return fmt.Errorf("act: unknown or dead actor id %d", d.ID)
		}

		// Право действовать фиксируется на входе в тик: актор с ненулевой
		// перезарядкой не действует, даже если PRE_OWN доведет её до нуля.
		canAct := a.CanPerformAction()
		a.PreOwnTick()

		if canAct {
			in.resolveAction(d.ID, a, d.Action)
		}

		if a.PrePos == nil || *a.PrePos != a.Pos {
			systems.RecomputePerception(a, loc)
		}
	}

	in.postAnyPhase()
	loc.Turn++
	return nil
}

// resolveAction - разрешение одного действия (кандидаты по порядку до
// первого эффекта).
func (in *Instance) resolveAction(id domain.ActorID, a *domain.Actor, action domain.Action) {
	loc := in.Loc
	produced := false

candidates:
	for _, newPos := range a.PosAfterAction(action) {
		oldPos := a.Pos

		switch {
		case oldPos == newPos:
			// Без движения: диспатч недвигательного действия.
			produced = in.dispatchStatic(a, action) || produced
			break candidates

		case action.CouldBeAttack() && oldPos.Coord != newPos.Coord && loc.At(newPos.Coord).IsOccupied():
			// Шаг во врага - это атака.
			if !a.CanAttack() {
				break candidates
			}
			targetID := loc.CoordToID[newPos.Coord]
			if targetID == id {
				// Устаревшая собственная запись индекса - не цель.
				break candidates
			}
			dir := oldPos.Dir
			if action.Kind == domain.ActionMove {
				dir = oldPos.Dir.Rotate(action.Angle)
			}
			systems.ApplyAttack(a, loc.ActorsByID[targetID], dir, in.rng)
			produced = true
			// Дважды за тик не атакуют.
			break candidates

		case loc.Map.At(newPos.Coord).Kind == domain.TileDoor && !loc.Map.At(newPos.Coord).DoorOpen:
			// Уперлись в закрытую дверь - открываем её.
			t := loc.Map.At(newPos.Coord)
			t.DoorOpen = true
			loc.Map = loc.Map.WithTile(newPos.Coord, t)
			produced = true
			// Сквозь дверь рывком не проходят.
			break candidates

		case oldPos.Coord == newPos.Coord && oldPos.Dir != newPos.Dir:
			// Поворот на месте.
			a.Moved(newPos)
			systems.AccumulateLOS(a, loc)
			produced = true

		case oldPos.Coord != newPos.Coord && loc.At(newPos.Coord).IsPassable():
			// Обычный шаг. Старая запись индекса живет до конца тика:
			// в середине тика актор находится и по старой, и по новой
			// координате.
			a.Moved(newPos)
			loc.CoordToID[newPos.Coord] = id
			systems.AccumulateLOS(a, loc)
			produced = true

		default:
			// Уперлись в стену или занятую клетку - ничего не происходит.
		}
	}

	if produced || action.Kind == domain.ActionWait || action.Kind == domain.ActionCharge {
		a.PostAction(action)
	}
}

// dispatchStatic выполняет действия, не связанные с перемещением.
// Возвращает true, если действие произвело эффект.
func (in *Instance) dispatchStatic(a *domain.Actor, action domain.Action) bool {
	loc := in.Loc

	switch action.Kind {
	case domain.ActionPick:
		head := a.Head()
		item := loc.Items[head]
		if item == nil {
			return false
		}
		if !a.AddItem(item) {
			// Рюкзак без свободных букв - предмет остается на полу.
			return false
		}
		delete(loc.Items, head)
		return true

	case domain.ActionEquip:
		a.EquipSwitch(action.Letter)
		return true

	case domain.ActionDescend:
		if loc.Map.At(a.Coord()).Feature != domain.FeatureStairs {
			return false
		}
		if !a.IsPlayer() {
			return false
		}
		in.descendRequested = true
		return true

	case domain.ActionFire:
		// Дальний бой в ядре пока не разрешается; действие тратит тик.
		in.log.WithField("target", action.Target).Debug("Fire action is a stub.")
		return true

	default:
		return false
	}
}

// preAnyPhase - PRE_ANY для каждого живого актора.
func (in *Instance) preAnyPhase() {
	for _, id := range in.Loc.AliveIDs() {
		in.Loc.ActorsByID[id].PreAnyTick()
	}
}

// postAnyPhase - глобальная фаза POST_ANY: пересчет характеристик,
// вынос мертвых с рассыпанием инвентаря, перестройка индекса координат,
// пересчет света и шума.
func (in *Instance) postAnyPhase() {
	loc := in.Loc

	for _, id := range loc.AliveIDs() {
		loc.ActorsByID[id].PostAnyTick()
	}

	for _, id := range loc.ActorIDs() {
		a := loc.ActorsByID[id]
		if !a.IsDead() || loc.DeadIDs[id] {
			continue
		}
		in.spillInventory(a)
		delete(loc.ActorsByID, id)
		loc.DeadIDs[id] = true
		in.log.WithFields(logrus.Fields{
			"actor_id": id,
			"race":     a.Race.Description(),
		}).Info("Actor died.")
	}

	// Индекс координат перестраивается только по живым: устаревшие
	// записи середины тика здесь исчезают.
	loc.CoordToID = map[hex.Coord]domain.ActorID{}
	for _, id := range loc.AliveIDs() {
		loc.CoordToID[loc.ActorsByID[id].Pos.Coord] = id
	}

	systems.RecomputeLightMap(loc)
	systems.RecomputeNoise(loc)
}

// spillInventory высыпает рюкзак и экипировку мертвого актора на пол.
// Порядок обхода фиксирован, чтобы раскладка была детерминированной.
func (in *Instance) spillInventory(a *domain.Actor) {
	letters := make([]int, 0, len(a.ItemsBackpack))
	for ch := range a.ItemsBackpack {
		letters = append(letters, int(ch))
	}
	sort.Ints(letters)
	for _, ch := range letters {
		in.dropItemNear(a.Pos.Coord, a.ItemsBackpack[byte(ch)])
	}
	a.ItemsBackpack = map[byte]*domain.Item{}

	slots := make([]int, 0, len(a.ItemsEquipped))
	for slot := range a.ItemsEquipped {
		slots = append(slots, int(slot))
	}
	sort.Ints(slots)
	for _, slot := range slots {
		in.dropItemNear(a.Pos.Coord, a.ItemsEquipped[domain.Slot(slot)].Item)
	}
	a.ItemsEquipped = map[domain.Slot]domain.Slotted{}
}

// dropItemNear кладет предмет на ближайшую проходимую клетку без
// предмета. Если такой клетки в достижимой области нет, предмет
// пропадает - это документированная потеря, не ошибка.
func (in *Instance) dropItemNear(coord hex.Coord, item *domain.Item) {
	loc := in.Loc
	bfs := systems.NewTraverser(
		func(c hex.Coord) bool { return loc.Map.At(c).IsPassable() },
		func(c hex.Coord) bool { return loc.Map.At(c).IsPassable() && loc.Items[c] == nil },
		coord,
	)
	free, ok := bfs.Find()
	if !ok {
		in.log.WithField("item", item.Description()).Debug("No free tile for drop, item lost.")
		return
	}
	loc.Items[free] = item
}

// DescendRequested сообщает, попросил ли игрок спуск в этом тике.
func (in *Instance) DescendRequested() bool {
	return in.descendRequested
}

// NextLevel строит следующий уровень и переносит туда игрока.
// Память карты у игрока сбрасывается: новый уровень неизвестен.
func (in *Instance) NextLevel() error {
	in.descendRequested = false

	player := in.Loc.Player()
	if player == nil {
		return fmt.Errorf("next level: no player to carry over")
	}

	level := in.Loc.Level + 1
	if err := in.buildLevel(level); err != nil {
		return err
	}

	player.ChangedLevel()
	player.Pos = hex.NewPosition(hex.Origin, player.Pos.Dir)
	if _, err := in.SpawnPlayer(player); err != nil {
		return fmt.Errorf("next level: %w", err)
	}

	in.log.WithField("level", level).Info("Player descended.")
	return nil
}
