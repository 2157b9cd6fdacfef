package server

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"hexcrawl-server/internal/engine"
	"hexcrawl-server/internal/network"
	"hexcrawl-server/pkg/api"
	"hexcrawl-server/pkg/logger"
)

// Session - мост между драйвером тиков и websocket-клиентом игрока.
// На каждый запрос решения она отсылает клиенту персональный снимок
// мира, ждет команду, разбирает её и возвращает драйверу действие.
//
// Обрыв соединения закрывает канал ответов: для драйвера это
// фатальный конец прогона, частично собранный тик не применяется.
type Session struct {
	inst     *engine.Instance
	client   *Client
	hub      *network.Broadcaster
	provider engine.Provider
	log      *logrus.Entry
}

func NewSession(inst *engine.Instance, client *Client, hub *network.Broadcaster, provider engine.Provider) *Session {
	return &Session{
		inst:     inst,
		client:   client,
		hub:      hub,
		provider: provider,
		log:      logger.Log.WithField("component", "session"),
	}
}

// Serve обслуживает запросы драйвера до конца прогона.
// Должен быть запущен в горутине до старта драйвера.
func (s *Session) Serve(ctx context.Context) {
	defer close(s.provider.Replies)

	for {
		var req engine.Request
		select {
		case r, ok := <-s.provider.Requests:
			if !ok {
				return
			}
			req = r
		case <-ctx.Done():
			return
		}

		state := s.inst.BuildStateFor(req.ID, req.Actor)
		s.client.Send <- *state
		s.hub.Broadcast(*state)

	waitCommand:
		for {
			select {
			case cmd, ok := <-s.client.Commands:
				if !ok {
					s.log.Warn("Client disconnected mid-run, aborting.")
					return
				}
				action, err := ParseCommand(cmd)
				if err != nil {
					// Синтаксически неверная команда не тратит ход:
					// сообщаем об ошибке и ждем следующую.
					s.log.WithError(err).Warn("Rejected client command.")
					s.client.Send <- errorResponse(err)
					continue
				}
				select {
				case s.provider.Replies <- engine.Reply{ID: req.ID, Action: action}:
				case <-ctx.Done():
					return
				}
				break waitCommand

			case <-ctx.Done():
				return
			}
		}
	}
}

func errorResponse(err error) api.ServerResponse {
	return api.ServerResponse{
		Type: "ERROR",
		Logs: []api.LogEntry{{
			Text:      "Команда отклонена: " + err.Error(),
			Type:      "ERROR",
			Timestamp: time.Now().UnixMilli(),
		}},
	}
}
