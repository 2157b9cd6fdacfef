package systems

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
	"hexcrawl-server/pkg/logger"
)

// ApplyAttack разрешает удар ближнего боя attacker -> target.
// dir - направление удара (для определения атаки со спины/фланга).
//
// Генератор случайностей передается явно: бой воспроизводим при
// фиксированном зерне.
func ApplyAttack(attacker, target *domain.Actor, dir hex.Direction, rng *rand.Rand) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"attacker":  attacker.Race.Description(),
		"target":    target.Race.Description(),
	})

	acc := attacker.Stats.MeleeAcc
	dmg := attacker.Stats.MeleeDmg
	ac, ev := target.Stats.Base.AC, target.Stats.Base.EV

	// Удар в спину или фланг, а не в лицо цели.
	var fromBehind bool
	switch dir.AngleTo(target.Pos.Dir) {
	case hex.Forward, hex.Left, hex.Right:
		fromBehind = true
	}

	if fromBehind {
		acc *= 2
		dmg *= 2
	}

	// Выдохшийся атакующий бьет вполсилы и остается без выносливости.
	if !attacker.CanAttackSP() {
		acc /= 2
		dmg /= 2
		attacker.SP = 0
	} else {
		attacker.SP -= attacker.MeleeSPCost()
	}

	success := rollHit(rng, acc, ev)

	// Поглощение брони: из двух бросков берется лучший для защищающегося.
	randAC := maxInt(uniform(rng, ac), uniform(rng, ac))
	if dmg-randAC > 0 {
		dmg -= randAC
	} else {
		dmg = 0
	}

	if success {
		target.HP -= dmg
		target.NoiseMakes(domain.Rules.NoiseHit)
	}

	combatLogger.WithFields(logrus.Fields{
		"accuracy":  acc,
		"damage":    dmg,
		"behind":    fromBehind,
		"success":   success,
		"target_hp": target.HP,
	}).Debug("Attack resolved.")

	target.WasAttackedBy = append(target.WasAttackedBy, domain.AttackResult{
		Success: success,
		Dmg:     dmg,
		Who:     attacker.Race.Description(),
		Behind:  fromBehind,
	})
	attacker.DidAttack = append(attacker.DidAttack, domain.AttackResult{
		Success: success,
		Dmg:     dmg,
		Who:     target.Race.Description(),
		Behind:  fromBehind,
	})
}

// rollHit - проверка попадания: атака выигрывает, если её бросок в
// [0, acc] не меньше броска уклонения в [0, ev]. Монотонно по обоим
// аргументам; при acc == ev == 0 удар попадает.
func rollHit(rng *rand.Rand, acc, ev int) bool {
	return uniform(rng, acc) >= uniform(rng, ev)
}

// uniform - равномерный выбор из [0, n]; n <= 0 дает 0.
func uniform(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n + 1)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
