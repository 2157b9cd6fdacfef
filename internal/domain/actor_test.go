package domain

import (
	"testing"

	"hexcrawl-server/internal/hex"
)

func newHuman() *Actor {
	return NewActor(RaceHuman, hex.NewPosition(hex.Origin, hex.East))
}

func testWeapon(dmg, acc, strReq int) *Item {
	return &Item{
		Kind:     ItemWeapon,
		Name:     "Тестовый клинок",
		WearSlot: SlotRHand,
		Mods:     EffectiveStats{MeleeDmg: dmg, MeleeAcc: acc, MeleeStrReq: strReq},
	}
}

func testArmor(ac int, slot Slot) *Item {
	return &Item{
		Kind:     ItemArmor,
		Name:     "Тестовая броня",
		WearSlot: slot,
		Mods:     EffectiveStats{Base: Stats{AC: ac}},
	}
}

func TestRecalculateStatsDerivations(t *testing.T) {
	a := newHuman()

	if a.Stats.MeleeDmg != 4 {
		t.Errorf("Melee damage must derive from strength, got %d", a.Stats.MeleeDmg)
	}
	if a.Stats.MeleeAcc != 4 {
		t.Errorf("Melee accuracy must derive from dexterity, got %d", a.Stats.MeleeAcc)
	}
	if a.Stats.Base.AC != 2 {
		t.Errorf("AC must gain half of strength, got %d", a.Stats.Base.AC)
	}
	if a.Stats.Base.EV != 2 {
		t.Errorf("EV must gain half of dexterity, got %d", a.Stats.Base.EV)
	}
	if a.Stats.Base.MaxSP != 18 {
		t.Errorf("Max SP must gain double strength, got %d", a.Stats.Base.MaxSP)
	}
	if a.Stats.Base.MaxMP != 18 {
		t.Errorf("Max MP must gain double intelligence, got %d", a.Stats.Base.MaxMP)
	}
}

func TestAddItemAssignsLetters(t *testing.T) {
	a := newHuman()

	for i := 0; i < 26; i++ {
		if !a.AddItem(testWeapon(1, 0, 0)) {
			t.Fatalf("Backpack must accept item %d", i)
		}
	}
	if a.ItemsBackpack['a'] == nil || a.ItemsBackpack['z'] == nil {
		t.Fatal("Lowercase letters must be assigned first")
	}

	if !a.AddItem(testWeapon(1, 0, 0)) {
		t.Fatal("Backpack must switch to uppercase letters after z")
	}
	if a.ItemsBackpack['A'] == nil {
		t.Error("Item 27 must land under letter A")
	}
}

func TestEquipSwitchWeapon(t *testing.T) {
	a := newHuman()
	sword := testWeapon(3, 1, 0)
	a.AddItem(sword)

	a.EquipSwitch('a')
	if eq, ok := a.ItemsEquipped[SlotRHand]; !ok || eq.Item != sword || eq.Letter != 'a' {
		t.Fatal("Weapon must occupy the right hand slot under its letter")
	}
	if _, still := a.ItemsBackpack['a']; still {
		t.Error("Equipped item must leave the backpack")
	}
	if a.ActionCooldown != Rules.EquipCooldown {
		t.Errorf("Equipping a weapon must cost the regular cooldown, got %d", a.ActionCooldown)
	}

	a.RecalculateStats()
	if a.Stats.MeleeDmg != 4+3 {
		t.Errorf("Weapon mods must flow into effective stats, got damage %d", a.Stats.MeleeDmg)
	}

	// Повторный Equip по той же букве снимает предмет.
	a.EquipSwitch('a')
	if len(a.ItemsEquipped) != 0 {
		t.Error("Second equip by the same letter must unequip")
	}
	if a.ItemsBackpack['a'] != sword {
		t.Error("Unequipped item must return to the backpack under its letter")
	}
	a.RecalculateStats()
	if a.Stats.MeleeDmg != 4 {
		t.Errorf("Weapon mods must be gone after unequip, got damage %d", a.Stats.MeleeDmg)
	}
}

func TestEquipBodyArmorCooldown(t *testing.T) {
	a := newHuman()
	a.AddItem(testArmor(2, SlotBody))

	a.EquipSwitch('a')
	if a.ActionCooldown != Rules.EquipBodyCooldown {
		t.Errorf("Body armor must cost the long cooldown, got %d", a.ActionCooldown)
	}
}

func TestEquipReplacesSlot(t *testing.T) {
	a := newHuman()
	first := testWeapon(3, 0, 0)
	second := testWeapon(6, 0, 0)
	a.AddItem(first)  // 'a'
	a.AddItem(second) // 'b'

	a.EquipSwitch('a')
	a.ActionCooldown = 0
	a.EquipSwitch('b')

	if eq := a.ItemsEquipped[SlotRHand]; eq.Item != second {
		t.Error("Equipping into an occupied slot must swap the items")
	}
	if a.ItemsBackpack['a'] != first {
		t.Error("Displaced item must return to the backpack")
	}
	a.RecalculateStats()
	if a.Stats.MeleeDmg != 4+6 {
		t.Errorf("Only the new weapon must contribute mods, got damage %d", a.Stats.MeleeDmg)
	}
}

func TestConsumableUse(t *testing.T) {
	a := newHuman()
	potion := &Item{Kind: ItemConsumable, Name: "Зелье здоровья", EffectHP: 6}
	a.AddItem(potion)
	a.HP = 7

	a.EquipSwitch('a')
	if a.HP != 10 {
		t.Errorf("Healing must cap at max HP, got %d", a.HP)
	}
	if _, still := a.ItemsBackpack['a']; still {
		t.Error("Applied consumable must be consumed")
	}
	if a.ActionCooldown != Rules.UseCooldown {
		t.Errorf("Use must cost its cooldown, got %d", a.ActionCooldown)
	}
}

func TestConsumableUseWithoutEffect(t *testing.T) {
	a := newHuman()
	potion := &Item{Kind: ItemConsumable, Name: "Зелье здоровья", EffectHP: 6}
	a.AddItem(potion)

	// Здоровье полное: эффекта нет, зелье остается в рюкзаке.
	a.EquipSwitch('a')
	if a.ItemsBackpack['a'] != potion {
		t.Error("Consumable without effect must stay in the backpack")
	}
	if a.ActionCooldown != Rules.UseCooldown {
		t.Errorf("Failed use still spends the tick cooldown, got %d", a.ActionCooldown)
	}
}

func TestPosAfterActionMove(t *testing.T) {
	a := newHuman()

	got := a.PosAfterAction(Move(hex.Forward))
	if len(got) != 1 || got[0].Coord != (hex.Coord{Q: 1, R: 0}) {
		t.Errorf("Forward move must target the east neighbor, got %v", got)
	}
	if got[0].Dir != hex.East {
		t.Error("Move must keep the facing")
	}
}

func TestPosAfterActionCharge(t *testing.T) {
	a := newHuman()

	// Человеку рывок стоит 10-4=6 SP, запаса 10 хватает: две клетки.
	got := a.PosAfterAction(Charge())
	if len(got) != 2 {
		t.Fatalf("Affordable charge must offer two candidates, got %d", len(got))
	}
	if got[1].Coord != (hex.Coord{Q: 2, R: 0}) {
		t.Errorf("Second candidate must be two cells ahead, got %v", got[1].Coord)
	}

	a.SP = 0
	got = a.PosAfterAction(Charge())
	if len(got) != 1 {
		t.Errorf("Starved charge must degrade to a single step, got %d candidates", len(got))
	}
}

func TestPosAfterActionSpin(t *testing.T) {
	a := newHuman()

	got := a.PosAfterAction(Spin(hex.Left))
	if len(got) != 1 {
		t.Fatalf("Spin must produce one candidate, got %d", len(got))
	}
	if got[0].Coord != (hex.Coord{Q: 1, R: -1}) {
		t.Errorf("Spin left must step to the northeast neighbor, got %v", got[0].Coord)
	}
	if got[0].Dir != hex.East.Rotate(hex.Right) {
		t.Errorf("Spin left must counter-turn the facing, got %v", got[0].Dir)
	}

	// Любой угол, кроме Left/Right, движения не дает.
	got = a.PosAfterAction(Spin(hex.Back))
	if len(got) != 1 || got[0] != a.Pos {
		t.Errorf("Spin with a non-lateral angle must stay put, got %v", got)
	}
}

func TestPreAnyTickClearsDeltas(t *testing.T) {
	a := newHuman()
	a.NoiseMakes(5)
	a.NoiseHears(hex.Coord{Q: 2, R: 0}, Noise{Kind: NoiseCreature, Race: RaceRat})
	a.DidAttack = []AttackResult{{Success: true}}

	a.PreAnyTick()

	if a.NoiseEmission != 0 || len(a.Heard) != 0 {
		t.Error("Noise state must reset each tick")
	}
	if a.DidAttack != nil {
		t.Error("Combat journal must reset each tick")
	}
	if a.PrePos == nil || *a.PrePos != a.Pos {
		t.Error("PrePos must snapshot the position at tick start")
	}
}
