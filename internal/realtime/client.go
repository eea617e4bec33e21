package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer. Also
	// bounds how long an unauthenticated connection may sit idle.
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	sendBufSize = 256
)

// Client is a single live WebSocket connection. It starts unbound; the
// router binds it to a user after a valid auth frame. The bound identity
// is only touched from the connection's read loop, so it needs no lock.
type Client struct {
	ID   string
	Send chan Frame

	conn      *websocket.Conn
	userID    uint
	closeOnce sync.Once
	done      chan struct{}
	logger    zerolog.Logger
}

func NewClient(conn *websocket.Conn, logger zerolog.Logger) *Client {
	return &Client{
		ID:     uuid.New().String(),
		Send:   make(chan Frame, sendBufSize),
		conn:   conn,
		done:   make(chan struct{}),
		logger: logger,
	}
}

// UserID returns the bound user ID, zero while unauthenticated.
func (c *Client) UserID() uint {
	return c.userID
}

// Bound reports whether the connection completed the auth handshake.
func (c *Client) Bound() bool {
	return c.userID != 0
}

func (c *Client) bind(userID uint) {
	c.userID = userID
}

// Enqueue queues a frame for delivery without blocking. Frames to a
// closed or saturated connection are dropped; live delivery is
// best-effort and the durable notification record is the source of truth.
func (c *Client) Enqueue(frame Frame) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.Send <- frame:
		return true
	default:
		c.logger.Warn().
			Str("clientId", c.ID).
			Str("type", string(frame.Type)).
			Msg("Send buffer full, frame dropped")
		return false
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// ReadPump reads frames from the connection and hands them to the
// router. It runs in its own goroutine, one per connection, so frames
// from a single socket are processed in order.
func (c *Client) ReadPump(router *Router) {
	defer func() {
		router.HandleClose(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error().Err(err).Str("clientId", c.ID).Msg("WebSocket read error")
			}
			break
		}
		router.HandleFrame(c, raw)
	}
}

// WritePump drains the send queue to the connection and keeps the peer
// alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.Send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(frame); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
