package agent

import (
	"context"
	"math/rand"

	"github.com/sirupsen/logrus"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/internal/engine"
	"hexcrawl-server/internal/hex"
	"hexcrawl-server/internal/systems"
	"hexcrawl-server/pkg/logger"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Он обслуживает канальную пару поставщика решений движка за ВСЕХ
// неигровых акторов сразу: драйвер присылает запрос за конкретного
// актора, бот отвечает ровно одним действием.
//
// Жизненный цикл:
//  1. NewBot -> получает канальную пару от драйвера.
//  2. Run -> запускается в отдельной горутине, слушает запросы.
//  3. На каждый Request вычисляется decide и отправляется Reply.
type Bot struct {
	provider engine.Provider
	rng      *rand.Rand
	log      *logrus.Entry
}

// NewBot создает агента над канальной парой поставщика.
// Генератор случайностей свой, чтобы не дергать генератор движка.
func NewBot(provider engine.Provider, seed int64) *Bot {
	return &Bot{
		provider: provider,
		rng:      rand.New(rand.NewSource(seed)),
		log:      logger.Log.WithField("component", "bot"),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
// Завершается по отмене контекста или закрытию канала запросов.
func (b *Bot) Run(ctx context.Context) {
	defer close(b.provider.Replies)

	for {
		select {
		case req, ok := <-b.provider.Requests:
			if !ok {
				b.log.Debug("Request channel closed, agent shut down.")
				return
			}
			action := b.decide(req.Actor, req.Loc)
			select {
			case b.provider.Replies <- engine.Reply{ID: req.ID, Action: action}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// decide - мозг бота. Приоритеты, от старшего к младшему:
// видимый враг -> услышанный шум чужой расы -> случайное блуждание.
func (b *Bot) decide(actor *domain.Actor, loc *domain.Location) domain.Action {
	if !actor.CanPerformAction() {
		return domain.Wait()
	}

	if target := b.closestVisibleEnemy(actor, loc); target != nil {
		return b.goTo(actor, loc, target.Coord())
	}

	if c, ok := b.closestForeignNoise(actor); ok {
		return b.goTo(actor, loc, c)
	}

	return b.roam()
}

// closestVisibleEnemy ищет ближайшего видимого актора другой стороны.
func (b *Bot) closestVisibleEnemy(actor *domain.Actor, loc *domain.Location) *domain.Actor {
	var best *domain.Actor
	bestDist := 0
	for _, id := range loc.AliveIDs() {
		other := loc.ActorsByID[id]
		if other == actor || other.Player == actor.Player {
			continue
		}
		if !actor.Sees(other.Coord()) {
			continue
		}
		d := actor.Coord().Distance(other.Coord())
		if best == nil || d < bestDist {
			best, bestDist = other, d
		}
	}
	return best
}

// closestForeignNoise ищет ближайший источник шума чужой расы.
func (b *Bot) closestForeignNoise(actor *domain.Actor) (hex.Coord, bool) {
	var best hex.Coord
	bestDist := 0
	found := false
	for c, n := range actor.Heard {
		if n.Race == actor.Race {
			continue
		}
		d := actor.Coord().Distance(c)
		if !found || d < bestDist {
			best, bestDist, found = c, d, true
		}
	}
	return best, found
}

// goTo делает один шаг кратчайшего пути к цели. Соседняя цель прямо
// по курсу означает атаку: движение в занятую клетку движок
// разрешает как удар.
func (b *Bot) goTo(actor *domain.Actor, loc *domain.Location, to hex.Coord) domain.Action {
	if actor.Coord() == to {
		return b.roam()
	}

	step := to
	if actor.Coord().Distance(to) > 1 {
		tr := systems.NewTraverser(
			func(c hex.Coord) bool { return loc.Map.At(c).IsPassable() },
			func(c hex.Coord) bool { return c == to },
			actor.Coord(),
		)
		if _, ok := tr.Find(); !ok {
			return b.roam()
		}
		first, ok := tr.BacktraceLast(to)
		if !ok {
			return b.roam()
		}
		step = first
	}

	dir, ok := actor.Coord().DirectionTo(step)
	if !ok {
		return b.roam()
	}
	if dir == actor.Pos.Dir {
		return domain.Move(hex.Forward)
	}
	return domain.Turn(dir.AngleTo(actor.Pos.Dir))
}

// roam - случайное блуждание, когда целей нет.
func (b *Bot) roam() domain.Action {
	switch b.rng.Intn(4) {
	case 0:
		return domain.Turn(hex.Right)
	case 1:
		return domain.Turn(hex.Left)
	case 2:
		return domain.Move(hex.Forward)
	default:
		return domain.Wait()
	}
}
