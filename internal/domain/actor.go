package domain

import (
	"hexcrawl-server/internal/hex"
)

// ActorID - идентификатор актора внутри Location. Выдается монотонным
// счётчиком и никогда не переиспользуется.
type ActorID uint32

// Visibility - множество координат (порядок не важен).
type Visibility map[hex.Coord]bool

// NoiseKind - вид услышанного звука.
type NoiseKind uint8

const (
	NoiseCreature NoiseKind = iota
)

// Noise - что именно было услышано (пока только существа).
type Noise struct {
	Kind NoiseKind `json:"kind"`
	Race Race      `json:"race"`
}

// NoiseMap - координата источника -> вид звука. Пересобирается каждый тик.
type NoiseMap map[hex.Coord]Noise

// AttackResult - структурированная запись об ударе для журналов боя.
type AttackResult struct {
	Success bool   `json:"success"`
	Dmg     int    `json:"dmg"`
	Who     string `json:"who"`
	Behind  bool   `json:"behind"`
}

// Actor - живая сущность: характеристики, инвентарь, восприятие,
// состояние жизненного цикла тика.
type Actor struct {
	HP int `json:"hp"`
	MP int `json:"mp"`
	SP int `json:"sp"`

	// Снимок ресурсов на начало последнего собственного тика,
	// когда актор мог действовать (для дельт в UI).
	SavedHP int `json:"savedHp"`
	SavedMP int `json:"savedMp"`
	SavedSP int `json:"savedSp"`

	Player bool          `json:"player"`
	PrePos *hex.Position `json:"prePos,omitempty"`
	Pos    hex.Position  `json:"pos"`
	Acted  bool          `json:"acted"`

	Race      Race           `json:"race"`
	BaseStats Stats          `json:"baseStats"`
	ModStats  EffectiveStats `json:"modStats"`
	Stats     EffectiveStats `json:"stats"`

	// InLOS - прямая видимость строго из конечной позиции тика
	// (для мгновенных боевых проверок).
	InLOS Visibility `json:"-"`

	// TempLOS - накопитель видимости за тик: если за один тик было
	// несколько под-перемещений, сюда попадает видимость из каждой
	// промежуточной позиции.
	TempLOS Visibility `json:"-"`

	// Visible - видимое сейчас: LOS, отфильтрованный светом.
	Visible Visibility `json:"-"`

	// Known - память клеток, когда-либо увиденных. Монотонно растет,
	// очищается только при смене уровня.
	Known      Visibility `json:"-"`
	KnownAreas Visibility `json:"-"`

	// Discovered - дельта этого тика к Known.
	Discovered      Visibility `json:"-"`
	DiscoveredAreas Visibility `json:"-"`

	Heard         NoiseMap `json:"-"`
	NoiseEmission int      `json:"noiseEmission"`
	LightEmission int      `json:"lightEmission"`

	ActionCooldown int `json:"actionCooldown"`

	ItemLetters   map[byte]bool  `json:"-"`
	ItemsEquipped map[Slot]Slotted `json:"-"`
	ItemsBackpack map[byte]*Item `json:"-"`

	WasAttackedBy []AttackResult `json:"wasAttackedBy"`
	DidAttack     []AttackResult `json:"didAttack"`
}

// Slotted - экипированный предмет вместе с буквой, под которой он
// значится в инвентаре.
type Slotted struct {
	Letter byte
	Item   *Item
}

// NewActor создает актора указанной расы в указанной позиции.
func NewActor(race Race, pos hex.Position) *Actor {
	stats := BaseStats(race)
	a := &Actor{
		Race:      race,
		Pos:       pos,
		BaseStats: stats,

		HP: stats.MaxHP, MP: stats.MaxMP, SP: stats.MaxSP,
		SavedHP: stats.MaxHP, SavedMP: stats.MaxMP, SavedSP: stats.MaxSP,

		InLOS: Visibility{}, TempLOS: Visibility{}, Visible: Visibility{},
		Known: Visibility{}, KnownAreas: Visibility{},
		Discovered: Visibility{}, DiscoveredAreas: Visibility{},
		Heard: NoiseMap{},

		ItemLetters:   map[byte]bool{},
		ItemsEquipped: map[Slot]Slotted{},
		ItemsBackpack: map[byte]*Item{},
	}
	a.RecalculateStats()
	return a
}

func (a *Actor) Coord() hex.Coord { return a.Pos.Coord }

// Head - клетка прямо перед актором.
func (a *Actor) Head() hex.Coord { return a.Pos.Head() }

func (a *Actor) Sees(c hex.Coord) bool { return a.Visible[c] }
func (a *Actor) Knows(c hex.Coord) bool { return a.Known[c] }
func (a *Actor) Hears(c hex.Coord) bool { _, ok := a.Heard[c]; return ok }

func (a *Actor) IsPlayer() bool { return a.Player }
func (a *Actor) SetPlayer() { a.Player = true }
func (a *Actor) IsDead() bool { return a.HP <= 0 }

// CanPerformAction: мертвые и "остывающие" акторы действий не совершают.
func (a *Actor) CanPerformAction() bool {
	return !a.IsDead() && a.ActionCooldown == 0
}

// CanAttack учитывает и перезарядку, и запас выносливости.
func (a *Actor) CanAttack() bool {
	return a.ActionCooldown == 0 && a.CanAttackSP()
}

// MeleeSPCost - цена удара выносливостью: нехватка силы до требования оружия.
func (a *Actor) MeleeSPCost() int {
	return maxInt(0, a.Stats.MeleeStrReq-a.Stats.Base.Str)
}

// ChargeSPCost - цена рывка выносливостью.
func (a *Actor) ChargeSPCost() int {
	return maxInt(0, Rules.ChargeBaseCost-a.Stats.Base.Str)
}

func (a *Actor) CanAttackSP() bool { return a.SP >= a.MeleeSPCost() }
func (a *Actor) CanChargeSP() bool { return a.SP >= a.ChargeSPCost() }

// PosAfterAction возвращает упорядоченный список позиций-кандидатов,
// подразумеваемых действием. Обрабатываются по порядку до первого эффекта.
func (a *Actor) PosAfterAction(action Action) []hex.Position {
	pos := a.Pos
	switch action.Kind {
	case ActionWait, ActionPick, ActionEquip, ActionDescend, ActionFire:
		return []hex.Position{pos}
	case ActionTurn:
		return []hex.Position{pos.Turned(action.Angle)}
	case ActionMove:
		return []hex.Position{pos.Shifted(pos.Dir.Rotate(action.Angle).Delta())}
	case ActionCharge:
		one := pos.Shifted(pos.Dir.Delta())
		if a.CanChargeSP() {
			return []hex.Position{one, one.Shifted(pos.Dir.Delta())}
		}
		return []hex.Position{one}
	case ActionSpin:
		// Диагональ: шаг в повернутом направлении с обратным доворотом.
		switch action.Angle {
		case hex.Left, hex.Right:
		default:
			return []hex.Position{pos}
		}
		stepped := pos.Shifted(pos.Dir.Rotate(action.Angle).Delta())
		return []hex.Position{stepped.Turned(action.Angle.Invert())}
	default:
		return []hex.Position{pos}
	}
}

// PostAction - бухгалтерия после применения действия (§ цикл тика).
func (a *Actor) PostAction(action Action) {
	switch action.Kind {
	case ActionWait:
		a.SP = minInt(a.Stats.Base.MaxSP, a.SP+Rules.WaitRegenSP)
	case ActionCharge:
		a.SP = maxInt(0, a.SP-a.ChargeSPCost())
		a.Acted = true
	default:
		a.Acted = true
	}
}

// SaveStats снимает снимок hp/mp/sp для показа дельт.
func (a *Actor) SaveStats() {
	a.SavedHP, a.SavedMP, a.SavedSP = a.HP, a.MP, a.SP
}

// NoiseMakes поднимает собственное шумовое излучение до уровня noise.
func (a *Actor) NoiseMakes(noise int) {
	if a.NoiseEmission < noise {
		a.NoiseEmission = noise
	}
}

// NoiseHears записывает услышанный звук от координаты источника.
func (a *Actor) NoiseHears(src hex.Coord, n Noise) {
	a.Heard[src] = n
}

// Moved переставляет актора в новую позицию (или разворачивает на месте).
// Видимость из новой позиции докапливает вызывающая сторона.
func (a *Actor) Moved(newPos hex.Position) {
	a.Pos = newPos
	a.NoiseMakes(Rules.NoiseMove)
}

// CouldHaveSeen: мог ли актор наблюдать перемещение другого актора
// (видна текущая или предыдущая позиция).
func (a *Actor) CouldHaveSeen(other *Actor) bool {
	if a.Sees(other.Pos.Coord) {
		return true
	}
	return other.PrePos != nil && a.Sees(other.PrePos.Coord)
}

// ChangedLevel сбрасывает память карты: на новом уровне она не переносится.
func (a *Actor) ChangedLevel() {
	a.Known = Visibility{}
	a.KnownAreas = Visibility{}
}

// PreAnyTick - фаза PRE_ANY: очистка пер-тиковых дельт у каждого живого.
func (a *Actor) PreAnyTick() {
	pre := a.Pos
	a.PrePos = &pre
	a.DidAttack = nil
	a.WasAttackedBy = nil
	a.TempLOS = Visibility{}
	a.Discovered = Visibility{}
	a.DiscoveredAreas = Visibility{}
	a.NoiseEmission = 0
	a.Heard = NoiseMap{}
}

// PreOwnTick - фаза PRE_OWN: тикаем перезарядку, сбрасываем флаг действия.
func (a *Actor) PreOwnTick() {
	if a.ActionCooldown > 0 {
		a.ActionCooldown--
	}
	a.Acted = false
	if a.CanPerformAction() {
		a.SaveStats()
	}
}

// PostAnyTick - фаза POST_ANY на уровне актора: пересчёт эффективных
// характеристик. Никогда не хранит их устаревшими между тиками.
func (a *Actor) PostAnyTick() {
	a.RecalculateStats()
}

// RecalculateStats собирает эффективные характеристики из базовых и
// модификаторов экипировки, затем довешивает производные от атрибутов.
func (a *Actor) RecalculateStats() {
	s := a.BaseStats.ToEffective().Add(a.ModStats)

	s.MeleeDmg += s.Base.Str
	s.MeleeAcc += s.Base.Dex
	s.Base.AC += s.Base.Str / 2
	s.Base.EV += s.Base.Dex / 2
	s.Base.MaxSP += s.Base.Str * 2
	s.Base.MaxMP += s.Base.Int * 2

	a.Stats = s
}

// --- ИНВЕНТАРЬ ---

// AddItem кладет предмет в рюкзак под первую свободную букву.
// false - буквы кончились (52 предмета уже на руках).
func (a *Actor) AddItem(item *Item) bool {
	for _, span := range [][2]byte{{'a', 'z'}, {'A', 'Z'}} {
		for ch := span[0]; ch <= span[1]; ch++ {
			if !a.ItemLetterTaken(ch) {
				a.ItemLetters[ch] = true
				a.ItemsBackpack[ch] = item
				return true
			}
		}
	}
	return false
}

// ItemLetterTaken: буква занята рюкзаком или экипированным предметом.
func (a *Actor) ItemLetterTaken(ch byte) bool {
	if a.ItemLetters[ch] {
		return true
	}
	for _, eq := range a.ItemsEquipped {
		if eq.Letter == ch {
			return true
		}
	}
	return false
}

// EquipSwitch - команда Equip(буква): надеть предмет из рюкзака,
// применить расходник или снять уже надетый.
func (a *Actor) EquipSwitch(ch byte) {
	item, inBackpack := a.ItemsBackpack[ch]
	if !inBackpack {
		a.Unequip(ch)
		return
	}

	delete(a.ItemsBackpack, ch)
	if item.IsUsable() {
		if !item.Use(a) {
			a.ItemsBackpack[ch] = item
		}
		a.ActionCooldown += Rules.UseCooldown
		return
	}
	a.EquipItem(item, ch)
}

// EquipItem надевает предмет в его слот, освобождая слот при необходимости.
// Неэкипируемый предмет возвращается в рюкзак.
func (a *Actor) EquipItem(item *Item, ch byte) {
	slot, ok := item.Slot()
	if !ok {
		a.ItemsBackpack[ch] = item
		return
	}

	a.UnequipSlot(slot)
	a.ModStats = a.ModStats.Add(item.Stats())
	a.ItemsEquipped[slot] = Slotted{Letter: ch, Item: item}
	a.ActionCooldown += equipCooldown(slot)
}

// UnequipSlot снимает предмет из слота обратно в рюкзак.
func (a *Actor) UnequipSlot(slot Slot) {
	eq, ok := a.ItemsEquipped[slot]
	if !ok {
		return
	}
	delete(a.ItemsEquipped, slot)
	a.ModStats = a.ModStats.Sub(eq.Item.Stats())
	a.ItemsBackpack[eq.Letter] = eq.Item
	a.ActionCooldown += equipCooldown(slot)
}

// Unequip снимает предмет по букве, под которой он экипирован.
func (a *Actor) Unequip(ch byte) {
	for slot, eq := range a.ItemsEquipped {
		if eq.Letter == ch {
			a.UnequipSlot(slot)
			return
		}
	}
}

func equipCooldown(slot Slot) int {
	if slot == SlotBody {
		return Rules.EquipBodyCooldown
	}
	return Rules.EquipCooldown
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
