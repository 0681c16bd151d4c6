package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/infer"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait).
	pingPeriod = 54 * time.Second

	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are trusted: the server binds localhost for a local
	// visualization frontend.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client is one websocket connection.
type Client struct {
	id     string
	server *Server
	conn   *websocket.Conn
	send   chan interface{}
}

// QueryMessage is the client-to-server request envelope.
type QueryMessage struct {
	Type string `json:"type"` // "ask", "path", "connected"
	Op   string `json:"op,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// AnswerMessage is the server-to-client response envelope. Path carries
// the witness chain for highlighting when one exists.
type AnswerMessage struct {
	Type   string       `json:"type"` // "answer"
	Op     string       `json:"op"`
	From   string       `json:"from"`
	To     string       `json:"to"`
	Result bool         `json:"result"`
	Path   []infer.Step `json:"path,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorw("Websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		id:     uuid.New().String(),
		server: s,
		conn:   conn,
		send:   make(chan interface{}, 16),
	}
	select {
	case s.register <- client:
	case <-s.ctx.Done():
		conn.Close()
		return
	}

	go client.writePump()

	// queue the full graph before the read loop starts, so the frontend
	// can render immediately and nothing races the client teardown
	client.send <- s.Graph()

	go client.readPump()
}

// trySend queues a payload for the write pump, giving up when the
// server is shutting down. The send channel is only ever closed after
// this client's read loop has exited, so the plain send cannot panic.
func (c *Client) trySend(payload interface{}) {
	select {
	case c.send <- payload:
	case <-c.server.ctx.Done():
	}
}

func (c *Client) readPump() {
	defer func() {
		// the hub stops receiving once shutdown begins
		select {
		case c.server.unregister <- c:
		case <-c.server.ctx.Done():
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg QueryMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.server.logger.Warnw("Websocket read error", "client_id", c.id, "error", err)
			}
			return
		}
		c.routeMessage(&msg)
	}
}

func (c *Client) routeMessage(msg *QueryMessage) {
	switch msg.Type {
	case "ask":
		c.handleAsk(msg)
	case "graph":
		c.trySend(c.server.Graph())
	default:
		c.trySend(AnswerMessage{
			Type:  "answer",
			Op:    msg.Op,
			Error: "unknown message type: " + msg.Type,
		})
	}
}

// handleAsk resolves both terms, runs the requested operation, and
// sends the boolean verdict with a witness path when one exists.
func (c *Client) handleAsk(msg *QueryMessage) {
	answer := AnswerMessage{Type: "answer", Op: msg.Op, From: msg.From, To: msg.To}

	from, err := c.server.resolver.Resolve(msg.From)
	if err == nil {
		answer.From = from
		var to string
		to, err = c.server.resolver.Resolve(msg.To)
		if err == nil {
			answer.To = to
		}
	}
	if err != nil {
		if errors.IsUnknownTerm(err) {
			answer.Error = err.Error()
			c.trySend(answer)
			return
		}
		c.server.logger.Errorw("Term resolution failed", "client_id", c.id, "error", err)
		answer.Error = "internal error"
		c.trySend(answer)
		return
	}

	facade := c.server.facade
	switch msg.Op {
	case "is_a":
		answer.Result = facade.IsA(answer.From, answer.To)
	case "part_of":
		answer.Result = facade.PartOf(answer.From, answer.To)
	case "depends_on":
		answer.Result = facade.DependsOn(answer.From, answer.To)
	case "has_part":
		answer.Result = facade.HasPartTransitive(answer.From, answer.To)
	case "path":
		if path := facade.Path(answer.From, answer.To); path != nil {
			answer.Result = true
			answer.Path = path
		}
	case "connected":
		answer.Result = facade.Connected(answer.From, answer.To)
		if answer.Result {
			answer.Path = facade.ConnectedPath(answer.From, answer.To)
		}
	default:
		answer.Error = "unknown operation: " + msg.Op
	}

	c.trySend(answer)
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(payload); err != nil {
				c.server.logger.Warnw("Websocket write error", "client_id", c.id, "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.server.ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
