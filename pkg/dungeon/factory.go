package dungeon

import (
	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/hex"
)

// CreatePlayer создает персонажа игрока со стартовым снаряжением.
// Снаряжение лежит в рюкзаке: надеть его - уже решение игрока,
// экипировка стоит ходов.
func CreatePlayer(race domain.Race, pos hex.Position) *domain.Actor {
	p := domain.NewActor(race, pos)
	p.AddItem(Dagger.Spawn())
	p.AddItem(HealthPotion.Spawn())
	return p
}
