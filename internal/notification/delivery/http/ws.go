package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"sync"
	"time"

	"ticketdesk/config"
	"ticketdesk/internal/model"
	"ticketdesk/internal/notification"
	"ticketdesk/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// wsConnection adapts one WebSocket client into a notification.Channel.
// The event bus goroutine calls Send; the write pump is the only goroutine
// that writes to the underlying connection.
type wsConnection struct {
	conn   *websocket.Conn
	userID string

	// Buffered channel of outbound messages. Send never blocks the bus:
	// when the buffer is full the message is dropped for this channel.
	send chan []byte

	cfg    config.WebSocketConfig
	logger log.Logger

	done     chan struct{}
	closeOne sync.Once

	// unsubscribe detaches this channel from the bus. Called at most once,
	// when whichever pump exits first tears the connection down.
	unsubscribe func()
}

func newWSConnection(conn *websocket.Conn, userID string, cfg config.WebSocketConfig, logger log.Logger) *wsConnection {
	return &wsConnection{
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, cfg.SendBufferSize),
		cfg:    cfg,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Send implements notification.Channel. It serializes the record and hands it
// to the write pump. A closed or saturated connection reports an error so the
// bus can prune this channel.
func (c *wsConnection) Send(n model.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return notification.ErrChannelClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	case <-c.done:
		return notification.ErrChannelClosed
	default:
		return notification.ErrSendBufferFull
	}
}

// close tears the connection down exactly once: detaches from the bus,
// signals both pumps and closes the socket.
func (c *wsConnection) close() {
	c.closeOne.Do(func() {
		if c.unsubscribe != nil {
			c.unsubscribe()
		}
		close(c.done)
		c.conn.Close()
	})
}

// wsPublishFrame is the inbound message shape clients may push over an open
// connection to publish a notification without a separate HTTP call.
type wsPublishFrame struct {
	UserID           string `json:"user_id"`
	Message          string `json:"message"`
	TicketID         string `json:"ticket_id"`
	NotificationType string `json:"notification_type"`
}

type wsErrorFrame struct {
	Error string `json:"error"`
}

// readPump pumps messages from the WebSocket connection into the use case.
// It also services pong frames so idle connections stay alive. The loop keeps
// the connection open across messages; only a read error ends it.
//
// The application runs readPump in a per-connection goroutine. The application
// ensures that there is at most one reader on a connection by executing all
// reads from this goroutine.
func (c *wsConnection) readPump(uc notification.UseCase) {
	defer c.close()

	c.conn.SetReadLimit(c.cfg.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Errorf(context.Background(), "internal.notification.delivery.http.readPump: user %s: %v", c.userID, err)
			}
			return
		}

		var frame wsPublishFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			// A malformed frame only answers this client, it never tears
			// the connection down.
			c.sendError("invalid message")
			continue
		}

		if _, err := uc.Publish(context.Background(), notification.PublishInput{
			UserID:           frame.UserID,
			Message:          frame.Message,
			TicketID:         frame.TicketID,
			NotificationType: frame.NotificationType,
		}); err != nil {
			c.sendError(err.Error())
		}
	}
}

func (c *wsConnection) sendError(msg string) {
	payload, err := json.Marshal(wsErrorFrame{Error: msg})
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	case <-c.done:
	default:
	}
}

// writePump pumps messages from the send buffer to the WebSocket connection.
//
// A goroutine running writePump is started for each connection. The
// application ensures that there is at most one writer to a connection by
// executing all writes from this goroutine.
func (c *wsConnection) writePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case message := <-c.send:
			// One frame per record: clients JSON-parse each frame whole,
			// so queued records are never folded into a single write.
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// HandleWebSocket upgrades the request and attaches the client to the event
// bus until it disconnects.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.AbortWithStatus(nethttp.StatusBadRequest)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  h.wsCfg.ReadBufferSize,
		WriteBufferSize: h.wsCfg.WriteBufferSize,
		CheckOrigin:     func(r *nethttp.Request) bool { return true },
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "internal.notification.delivery.http.HandleWebSocket: %v", err)
		return
	}

	ws := newWSConnection(conn, userID, h.wsCfg, h.logger)
	ws.unsubscribe = func() {
		h.uc.Unsubscribe(userID, ws)
	}
	h.uc.Subscribe(userID, ws)

	go ws.writePump()
	go ws.readPump(h.uc)
}
