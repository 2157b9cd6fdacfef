package dungeon

import (
	"math/rand"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// ItemTemplate определяет шаблон для создания предмета.
type ItemTemplate struct {
	Kind     domain.ItemKind
	Name     string
	WearSlot domain.Slot
	Mods     domain.EffectiveStats
	EffectHP int
	EffectSP int
}

// Spawn создает предмет из шаблона. Каждый вызов - новый экземпляр:
// предметы мутируют независимо.
func (t ItemTemplate) Spawn() *domain.Item {
	return &domain.Item{
		Kind:     t.Kind,
		Name:     t.Name,
		WearSlot: t.WearSlot,
		Mods:     t.Mods,
		EffectHP: t.EffectHP,
		EffectSP: t.EffectSP,
	}
}

// --- Оружие ---

var RustySword = ItemTemplate{
	Kind:     domain.ItemWeapon,
	Name:     "Ржавый меч",
	WearSlot: domain.SlotRHand,
	Mods:     domain.EffectiveStats{MeleeDmg: 3, MeleeAcc: 1, MeleeStrReq: 2},
}

var Dagger = ItemTemplate{
	Kind:     domain.ItemWeapon,
	Name:     "Кинжал",
	WearSlot: domain.SlotRHand,
	Mods:     domain.EffectiveStats{MeleeDmg: 2, MeleeAcc: 2, MeleeStrReq: 1},
}

var Warhammer = ItemTemplate{
	Kind:     domain.ItemWeapon,
	Name:     "Боевой молот",
	WearSlot: domain.SlotRHand,
	Mods:     domain.EffectiveStats{MeleeDmg: 6, MeleeAcc: -1, MeleeStrReq: 5},
}

// --- Броня ---

var LeatherArmor = ItemTemplate{
	Kind:     domain.ItemArmor,
	Name:     "Кожаный доспех",
	WearSlot: domain.SlotBody,
	Mods:     domain.EffectiveStats{Base: domain.Stats{AC: 2}},
}

var WoodenShield = ItemTemplate{
	Kind:     domain.ItemArmor,
	Name:     "Деревянный щит",
	WearSlot: domain.SlotLHand,
	Mods:     domain.EffectiveStats{Base: domain.Stats{AC: 1, EV: 1}},
}

var TravelCloak = ItemTemplate{
	Kind:     domain.ItemArmor,
	Name:     "Дорожный плащ",
	WearSlot: domain.SlotCloak,
	Mods:     domain.EffectiveStats{Base: domain.Stats{EV: 1}},
}

var LeatherBoots = ItemTemplate{
	Kind:     domain.ItemArmor,
	Name:     "Кожаные сапоги",
	WearSlot: domain.SlotFeet,
	Mods:     domain.EffectiveStats{Base: domain.Stats{EV: 1}},
}

// --- Расходники ---

var HealthPotion = ItemTemplate{
	Kind:     domain.ItemConsumable,
	Name:     "Зелье здоровья",
	EffectHP: 6,
}

var StaminaPotion = ItemTemplate{
	Kind:     domain.ItemConsumable,
	Name:     "Зелье бодрости",
	EffectSP: 6,
}

// floorLoot - что может лежать на полу, с весами.
var floorLoot = []struct {
	tpl    ItemTemplate
	weight int
}{
	{HealthPotion, 4},
	{StaminaPotion, 3},
	{Dagger, 2},
	{RustySword, 2},
	{LeatherArmor, 2},
	{WoodenShield, 2},
	{TravelCloak, 1},
	{LeatherBoots, 1},
	{Warhammer, 1},
}

// rollLoot выбирает шаблон предмета по весам.
func rollLoot(rng *rand.Rand) ItemTemplate {
	total := 0
	for _, e := range floorLoot {
		total += e.weight
	}
	roll := rng.Intn(total)
	for _, e := range floorLoot {
		roll -= e.weight
		if roll < 0 {
			return e.tpl
		}
	}
	return HealthPotion
}

// MobTemplate определяет породу монстра и с какого уровня он встречается.
type MobTemplate struct {
	Race     domain.Race
	MinLevel int
	Weight   int
}

var mobTable = []MobTemplate{
	{Race: domain.RaceRat, MinLevel: 0, Weight: 5},
	{Race: domain.RaceGoblin, MinLevel: 1, Weight: 3},
}

// rollMob создает монстра, допустимого на данном уровне.
func rollMob(rng *rand.Rand, level int, pos hex.Position) *domain.Actor {
	total := 0
	for _, m := range mobTable {
		if m.MinLevel <= level {
			total += m.Weight
		}
	}
	roll := rng.Intn(total)
	for _, m := range mobTable {
		if m.MinLevel > level {
			continue
		}
		roll -= m.Weight
		if roll < 0 {
			return domain.NewActor(m.Race, pos)
		}
	}
	return domain.NewActor(domain.RaceRat, pos)
}
