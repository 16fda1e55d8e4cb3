package server

import (
	"net/http"
	"time"

	"fogwalker-server/internal/engine"
	"fogwalker-server/pkg/api"
	"fogwalker-server/pkg/logger"
	"fogwalker-server/pkg/utils"

	"github.com/gorilla/websocket"
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

// Client - посредник между Websocket и GameService
type Client struct {
	Game     *engine.GameService
	Conn     *websocket.Conn
	Send     chan api.ServerResponse
	ClientID string
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game:     game,
		Conn:     conn,
		Send:     make(chan api.ServerResponse, 256),
		ClientID: utils.GenerateID(),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.ClientID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("client_id", c.ClientID).Info("Client disconnected")
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

	// 1. ПОДПИСКА НА ОБНОВЛЕНИЯ
	gameUpdates := c.Game.Hub.Register(c.ClientID)

	// Пересылаем обновления из Hub в writePump
	go func() {
		for msg := range gameUpdates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	logger.Log.WithField("client_id", c.ClientID).Info("Client connected")

	// 2. Отправляем INIT (полный снимок мира, триггер первой отрисовки)
	c.Game.ProcessCommand(api.ClientCommand{Action: api.ActionInit, ClientID: c.ClientID})

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		cmd.ClientID = c.ClientID
		c.Game.ProcessCommand(cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
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
