package main

import (
	"errors"
	"log"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"arcade/audio"
)

const maxSessions = 100

var ErrTooManySessions = errors.New("too many active sessions")

// Broadcaster is the outbound side of a connection
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Session is one cabinet played over one connection
type Session struct {
	ID   string
	Game string
	cab  Cabinet
	sfx  *audio.Queue
	out  Broadcaster
	done chan struct{}
}

// HandleKey forwards a key transition to the cabinet
func (s *Session) HandleKey(code string, down bool) {
	s.cab.HandleKey(code, down)
}

// Size returns the cabinet field size
func (s *Session) Size() (float64, float64) {
	return s.cab.Size()
}

// run drives the cabinet and streams every BroadcastEvery-th frame
func (s *Session) run() {
	defer close(s.done)
	s.cab.Run(func(tick uint64) {
		if tick%BroadcastEvery != 0 {
			return
		}
		s.broadcast(tick)
	})
}

func (s *Session) broadcast(tick uint64) {
	msg := FrameMsg{
		Game:  s.Game,
		Tick:  tick,
		Frame: s.cab.Snapshot(),
		Sfx:   s.sfx.Drain(),
	}
	data, err := msgpack.Marshal(&msg)
	if err != nil {
		log.Printf("frame marshal error: %v", err)
		return
	}
	s.out.SendBinary(data)
}

// stop ends the loop and waits for it to return. The cabinet silences
// its heartbeat and engine hum on Stop.
func (s *Session) stop() {
	s.cab.Stop()
	<-s.done
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionManager creates a new SessionManager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// CreateSession builds the named cabinet, starts its loop and registers
// it. Frames and sound cues go to out.
func (sm *SessionManager) CreateSession(game string, out Broadcaster) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil, ErrTooManySessions
	}

	sfx := audio.NewQueue()
	cab, err := NewCabinet(game, sfx)
	if err != nil {
		return nil, err
	}
	sess := &Session{
		ID:   GenerateUUID(),
		Game: game,
		cab:  cab,
		sfx:  sfx,
		out:  out,
		done: make(chan struct{}),
	}
	sm.sessions[sess.ID] = sess
	go sess.run()
	return sess, nil
}

// GetSession returns a session by ID
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// RemoveSession stops and forgets a session
func (sm *SessionManager) RemoveSession(id string) {
	sm.mu.Lock()
	sess, ok := sm.sessions[id]
	delete(sm.sessions, id)
	sm.mu.Unlock()
	if ok {
		sess.stop()
	}
}

// Count returns the number of live sessions
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// StopAll tears every session down, used on shutdown
func (sm *SessionManager) StopAll() {
	sm.mu.Lock()
	all := sm.sessions
	sm.sessions = make(map[string]*Session)
	sm.mu.Unlock()
	for _, sess := range all {
		sess.stop()
	}
}
