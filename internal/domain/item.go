package domain

// Slot - куда экипируется предмет.
type Slot uint8

const (
	SlotHead Slot = iota
	SlotBody
	SlotCloak
	SlotFeet
	SlotLHand
	SlotRHand
	SlotQuick
)

// ItemKind - закрытый набор видов предметов.
// Никакого динамического диспатча: поведение полностью определяется видом.
type ItemKind uint8

const (
	ItemWeapon ItemKind = iota
	ItemArmor
	ItemConsumable
)

// Item - предмет. Владелец в каждый момент ровно один: слот экипировки
// актора, ячейка рюкзака актора или клетка пола (не больше одного на клетку).
type Item struct {
	Kind        ItemKind       `json:"kind"`
	Name        string         `json:"name"`
	WearSlot    Slot           `json:"wearSlot"`
	Mods        EffectiveStats `json:"mods"`
	EffectHP    int            `json:"effectHp,omitempty"`
	EffectSP    int            `json:"effectSp,omitempty"`
}

// Description возвращает имя предмета для журналов и рюкзака.
func (it *Item) Description() string {
	return it.Name
}

// Slot возвращает слот экипировки и признак "экипируемый ли это предмет".
func (it *Item) Slot() (Slot, bool) {
	switch it.Kind {
	case ItemWeapon, ItemArmor:
		return it.WearSlot, true
	default:
		return 0, false
	}
}

// Stats возвращает вклад предмета в эффективные характеристики владельца.
func (it *Item) Stats() EffectiveStats {
	return it.Mods
}

// IsUsable сообщает, применяется ли предмет командой Equip по букве.
func (it *Item) IsUsable() bool {
	return it.Kind == ItemConsumable
}

// Use применяет расходуемый предмет к актору. Возвращает false, если
// эффект не сработал (предмет остаётся в рюкзаке).
func (it *Item) Use(a *Actor) bool {
	if it.Kind != ItemConsumable {
		return false
	}

	applied := false
	if it.EffectHP > 0 && a.HP < a.Stats.Base.MaxHP {
		a.HP = minInt(a.Stats.Base.MaxHP, a.HP+it.EffectHP)
		applied = true
	}
	if it.EffectSP > 0 && a.SP < a.Stats.Base.MaxSP {
		a.SP = minInt(a.Stats.Base.MaxSP, a.SP+it.EffectSP)
		applied = true
	}
	return applied
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
