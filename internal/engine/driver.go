package engine

import (
	"context"
	"fmt"

	"hexcrawl-server/internal/domain"
	"hexcrawl-server/pkg/logger"
)

// Request - запрос решения: замороженный снимок мира и актор, за
// которого требуется решение. До сбора всех ответов тика мир не
// мутирует, поэтому ссылки можно читать без копий.
type Request struct {
	ID    domain.ActorID
	Actor *domain.Actor
	Loc   *domain.Location
}

// Reply - ответ поставщика решений.
type Reply struct {
	ID     domain.ActorID
	Action domain.Action
}

// Provider - пара каналов одного поставщика решений (человек или ИИ).
type Provider struct {
	Requests chan Request
	Replies  chan Reply
}

// NewProvider создает поставщика с небуферизованными каналами:
// драйвер блокируется на каждом ответе по порядку хода.
func NewProvider() Provider {
	return Provider{
		Requests: make(chan Request),
		Replies:  make(chan Reply),
	}
}

// Driver гоняет тики: раздает запросы решений, собирает ровно один
// ответ на каждого живого актора и лишь затем применяет их
// последовательно. Обрыв канала решений фатален: безопасного
// частично-применённого тика не существует, перезапуск невозможен.
type Driver struct {
	inst   *Instance
	player Provider
	ai     Provider
}

// NewDriver собирает драйвер над инстансом и двумя поставщиками.
func NewDriver(inst *Instance, player, ai Provider) *Driver {
	return &Driver{inst: inst, player: player, ai: ai}
}

// Run крутит тики до отмены контекста или смерти игрока.
// Любая ошибка - причина завершения прогона, не повод для ретрая.
func (d *Driver) Run(ctx context.Context) error {
	log := logger.Log.WithField("component", "driver")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		player := d.inst.Loc.Player()
		if player == nil || player.IsDead() {
			log.WithField("turn", d.inst.Loc.Turn).Info("Player is gone, run over.")
			return nil
		}

		order := d.inst.TurnOrder()

		// Фаза сбора: мир заморожен, мутаций нет.
		decisions := make([]Decision, 0, len(order))
		for _, id := range order {
			actor := d.inst.Loc.ActorsByID[id]

			provider := d.ai
			if actor.IsPlayer() {
				provider = d.player
			}

			req := Request{ID: id, Actor: actor, Loc: d.inst.Loc}

			select {
			case provider.Requests <- req:
			case <-ctx.Done():
				return ctx.Err()
			}

			select {
			case reply, ok := <-provider.Replies:
				if !ok {
					return fmt.Errorf("decision channel closed for actor %d", id)
				}
				if reply.ID != id {
					return fmt.Errorf("decision for actor %d, expected %d", reply.ID, id)
				}
				decisions = append(decisions, Decision{ID: id, Action: reply.Action})
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		// Фаза применения: строго последовательно, без блокировок.
		if err := d.inst.Tick(decisions); err != nil {
			return err
		}

		if d.inst.DescendRequested() {
			if err := d.inst.NextLevel(); err != nil {
				return err
			}
		}
	}
}
