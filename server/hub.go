package main

import "sync"

// Seat limits for /ws: a household can keep a few tabs open, the arcade as
// a whole has a hard ceiling.
const (
	seatsPerAddr = 5
	seatsTotal   = 1000
)

// seats counts open connections per remote address. A seat is taken before
// the websocket upgrade and given back when the read pump exits.
type seats struct {
	mu     sync.Mutex
	byAddr map[string]int
	taken  int
}

func (s *seats) take(addr string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken >= seatsTotal || s.byAddr[addr] >= seatsPerAddr {
		return false
	}
	s.byAddr[addr]++
	s.taken++
	return true
}

func (s *seats) give(addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byAddr[addr] <= 1 {
		delete(s.byAddr, addr)
	} else {
		s.byAddr[addr]--
	}
	if s.taken > 0 {
		s.taken--
	}
}

func (s *seats) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taken
}

// Hub tracks connected players and owns the cabinets they play
type Hub struct {
	mu         sync.RWMutex
	players    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	sessions   *SessionManager
	seats      seats
}

func NewHub() *Hub {
	return &Hub{
		players:    make(map[*Client]struct{}),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		sessions:   NewSessionManager(),
		seats:      seats{byAddr: make(map[string]int)},
	}
}

// Run admits and drops players until the process exits
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.join(c)
		case c := <-h.unregister:
			h.drop(c)
		}
	}
}

func (h *Hub) join(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.players[c] = struct{}{}
}

// drop powers off the player's cabinet before closing its send channel, so
// a last frame can never land on a closed channel
func (h *Hub) drop(c *Client) {
	if sid := c.SessionID(); sid != "" {
		h.sessions.RemoveSession(sid)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.players[c]; ok {
		delete(h.players, c)
		close(c.send)
	}
}

// Players returns how many clients are registered
func (h *Hub) Players() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.players)
}

// Seated returns how many websocket connections hold a seat
func (h *Hub) Seated() int {
	return h.seats.count()
}

// Shutdown powers off every cabinet
func (h *Hub) Shutdown() {
	h.sessions.StopAll()
}
