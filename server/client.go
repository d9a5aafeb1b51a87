package main

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 4096
	sendBufSize       = 256
	maxMessagesPerSec = 120
)

// Client represents a WebSocket connection. It plays at most one cabinet
// at a time.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	id         string
	remoteAddr string
	msgCount   int
	msgResetAt time.Time

	mu        sync.Mutex
	sessionID string
}

// NewClient creates a new Client
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufSize),
		id:         GenerateID(4),
		remoteAddr: remoteAddr,
	}
}

// SessionID returns the session the client is playing, or ""
func (c *Client) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

func (c *Client) setSession(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = id
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.hub.seats.give(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		msgType, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			break
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			break
		}

		if msgType == websocket.BinaryMessage {
			if key, ok := decodeBinaryKey(message); ok {
				c.handleKeyMsg(key)
			}
			continue
		}
		c.handleMessage(message)
	}
}

// WritePump writes messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			var err error
			if len(message) > 0 && message[0] == binaryMarker {
				err = c.conn.WriteMessage(websocket.BinaryMessage, message[1:])
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, message)
			}
			if err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.SendRaw(data)
}

// SendRaw sends pre-marshaled bytes as a text message to the client
func (c *Client) SendRaw(data []byte) {
	defer func() { recover() }()
	select {
	case c.send <- data:
	default:
		// Client too slow, drop message
	}
}

// SendBinary sends pre-marshaled bytes as a binary WebSocket message.
// Prefixes with binaryMarker so WritePump can distinguish from text.
func (c *Client) SendBinary(data []byte) {
	defer func() { recover() }()
	msg := make([]byte, len(data)+1)
	msg[0] = binaryMarker
	copy(msg[1:], data)
	select {
	case c.send <- msg:
	default:
	}
}

func (c *Client) sendError(msg string) {
	c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: msg}})
}

// handleMessage routes incoming messages (single-pass decode via InEnvelope)
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("unmarshal error: %v", err)
		return
	}

	switch env.T {
	case MsgPlay:
		c.handlePlay(env.D)
	case MsgKey:
		c.handleKey(env.D)
	case MsgLeave:
		c.handleLeave()
	default:
		c.sendError("unknown message type")
	}
}

// handlePlay replaces any running cabinet with a fresh one
func (c *Client) handlePlay(data json.RawMessage) {
	var msg PlayMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError("bad play message")
		return
	}
	c.handleLeave()

	sess, err := c.hub.sessions.CreateSession(msg.Game, c)
	if err != nil {
		if errors.Is(err, ErrTooManySessions) {
			log.Printf("session limit reached, refusing %s", c.remoteAddr)
		}
		c.sendError(err.Error())
		return
	}
	c.setSession(sess.ID)
	log.Printf("client %s started %s session %s", c.id, sess.Game, sess.ID)

	w, h := sess.Size()
	c.SendJSON(Envelope{T: MsgWelcome, Data: WelcomeMsg{SID: sess.ID, Game: sess.Game, W: w, H: h}})
}

func (c *Client) handleKey(data json.RawMessage) {
	var msg KeyMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	if msg.Code == "" || len(msg.Code) > maxKeyCodeLen {
		return
	}
	c.handleKeyMsg(msg)
}

func (c *Client) handleKeyMsg(msg KeyMsg) {
	sid := c.SessionID()
	if sid == "" {
		return
	}
	sess := c.hub.sessions.GetSession(sid)
	if sess == nil {
		return
	}
	sess.HandleKey(msg.Code, msg.Down)
}

func (c *Client) handleLeave() {
	sid := c.SessionID()
	if sid == "" {
		return
	}
	c.setSession("")
	c.hub.sessions.RemoveSession(sid)
	log.Printf("client %s left session %s", c.id, sid)
	c.SendJSON(Envelope{T: MsgLeft, Data: map[string]string{"sid": sid}})
}
