package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"hexcrawl-server/pkg/api"
	"hexcrawl-server/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - тонкая обертка над websocket-соединением: две помпы и два
// канала. Вся игровая логика живет выше, в Session.
type Client struct {
	Conn *websocket.Conn

	// Send - исходящие снимки мира. Закрывается владельцем соединения.
	Send chan api.ServerResponse

	// Commands - входящие разобранные команды. Закрывается readPump
	// при обрыве соединения.
	Commands chan api.ClientCommand
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Conn:     conn,
		Send:     make(chan api.ServerResponse, 16),
		Commands: make(chan api.ClientCommand),
	}
}

// readPump читает команды от клиента. Обрыв соединения закрывает
// Commands: для сессии это фатально, переподключения внутрь хода нет.
func (c *Client) readPump() {
	defer func() {
		close(c.Commands)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		c.Commands <- cmd
	}
}

// writePump отправляет данные клиенту + Ping.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
