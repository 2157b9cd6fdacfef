package systems

import (
	"math/rand"
	"testing"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// fighter создает актора и вручную выставляет боевые числа, чтобы тест
// не зависел от расовых таблиц. Stats переживают ApplyAttack: пересчёт
// случается только в POST_ANY.
func fighter(pos hex.Position, acc, dmg, ac, ev int) *domain.Actor {
	a := domain.NewActor(domain.RaceHuman, pos)
	a.Stats.MeleeAcc = acc
	a.Stats.MeleeDmg = dmg
	a.Stats.MeleeStrReq = 0
	a.Stats.Base.AC = ac
	a.Stats.Base.EV = ev
	return a
}

// Удар в лицо: без удвоения. ev=0 и ac=0 делают исход детерминированным.
func TestAttackFrontal(t *testing.T) {
	attacker := fighter(hex.NewPosition(hex.Coord{Q: -1, R: 0}, hex.East), 10, 5, 0, 0)
	target := fighter(hex.NewPosition(hex.Origin, hex.West), 0, 0, 0, 0)
	startHP := target.HP

	ApplyAttack(attacker, target, hex.East, rand.New(rand.NewSource(1)))

	if got := startHP - target.HP; got != 5 {
		t.Errorf("Expected 5 damage, got %d", got)
	}
	if len(target.WasAttackedBy) != 1 || target.WasAttackedBy[0].Behind {
		t.Errorf("Expected one frontal attack record, got %+v", target.WasAttackedBy)
	}
	if len(attacker.DidAttack) != 1 || !attacker.DidAttack[0].Success {
		t.Errorf("Expected one successful attack record, got %+v", attacker.DidAttack)
	}
}

// Удар в спину удваивает точность и урон.
func TestAttackFromBehindDoubles(t *testing.T) {
	attacker := fighter(hex.NewPosition(hex.Coord{Q: -1, R: 0}, hex.East), 10, 5, 0, 0)
	// Цель смотрит туда же, куда летит удар - это спина.
	target := fighter(hex.NewPosition(hex.Origin, hex.East), 0, 0, 0, 0)
	startHP := target.HP

	ApplyAttack(attacker, target, hex.East, rand.New(rand.NewSource(1)))

	if got := startHP - target.HP; got != 10 {
		t.Errorf("Expected doubled damage 10, got %d", got)
	}
	if !target.WasAttackedBy[0].Behind {
		t.Error("Attack record must be marked as from behind")
	}
}

// Фланговый удар (угол Left/Right к направлению цели) тоже считается спиной.
func TestAttackFlankCountsAsBehind(t *testing.T) {
	attacker := fighter(hex.NewPosition(hex.Coord{Q: -1, R: 0}, hex.East), 10, 5, 0, 0)
	target := fighter(hex.NewPosition(hex.Origin, hex.East.Rotate(hex.Right)), 0, 0, 0, 0)

	ApplyAttack(attacker, target, hex.East, rand.New(rand.NewSource(1)))

	if !target.WasAttackedBy[0].Behind {
		t.Error("Strike at Right angle to target facing must count as behind")
	}
}

// Удар стоит выносливости, когда силы не хватает до требования оружия.
func TestAttackSPCost(t *testing.T) {
	attacker := fighter(hex.NewPosition(hex.Coord{Q: -1, R: 0}, hex.East), 10, 5, 0, 0)
	attacker.Stats.MeleeStrReq = attacker.Stats.Base.Str + 3
	attacker.SP = 10
	target := fighter(hex.NewPosition(hex.Origin, hex.West), 0, 0, 0, 0)

	ApplyAttack(attacker, target, hex.East, rand.New(rand.NewSource(1)))

	if attacker.SP != 7 {
		t.Errorf("Expected SP 7 after paying melee cost 3, got %d", attacker.SP)
	}
}

// Выдохшийся атакующий бьет вполсилы и остается без выносливости.
func TestAttackStarvedHalves(t *testing.T) {
	attacker := fighter(hex.NewPosition(hex.Coord{Q: -1, R: 0}, hex.East), 10, 5, 0, 0)
	attacker.Stats.MeleeStrReq = attacker.Stats.Base.Str + 3
	attacker.SP = 2 // меньше цены удара
	target := fighter(hex.NewPosition(hex.Origin, hex.West), 0, 0, 0, 0)
	startHP := target.HP

	ApplyAttack(attacker, target, hex.East, rand.New(rand.NewSource(1)))

	if attacker.SP != 0 {
		t.Errorf("Starved attacker must end with 0 SP, got %d", attacker.SP)
	}
	if got := startHP - target.HP; got != 2 {
		t.Errorf("Expected halved damage 2, got %d", got)
	}
}

// Успешный удар шумит на весь коридор.
func TestAttackMakesNoise(t *testing.T) {
	attacker := fighter(hex.NewPosition(hex.Coord{Q: -1, R: 0}, hex.East), 10, 5, 0, 0)
	target := fighter(hex.NewPosition(hex.Origin, hex.West), 0, 0, 0, 0)

	ApplyAttack(attacker, target, hex.East, rand.New(rand.NewSource(1)))

	if target.NoiseEmission != domain.Rules.NoiseHit {
		t.Errorf("Expected noise emission %d on hit, got %d", domain.Rules.NoiseHit, target.NoiseEmission)
	}
}

// Броня поглощает урон, но не может увести его в минус.
func TestArmorNeverHeals(t *testing.T) {
	attacker := fighter(hex.NewPosition(hex.Coord{Q: -1, R: 0}, hex.East), 10, 1, 0, 0)
	target := fighter(hex.NewPosition(hex.Origin, hex.West), 0, 0, 50, 0)
	startHP := target.HP

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		ApplyAttack(attacker, target, hex.East, rng)
	}

	if target.HP > startHP {
		t.Errorf("Armor absorbed into negative damage: HP rose from %d to %d", startHP, target.HP)
	}
}

func TestRollHit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// При нулевых точности и уклонении удар всегда попадает.
	for i := 0; i < 20; i++ {
		if !rollHit(rng, 0, 0) {
			t.Fatal("Zero accuracy vs zero evasion must always hit")
		}
	}

	if uniform(rng, 0) != 0 || uniform(rng, -5) != 0 {
		t.Error("uniform over a non-positive range must be 0")
	}
}
