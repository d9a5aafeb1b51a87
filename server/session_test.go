package main

import (
	"sync"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"arcade/pong"
)

// mockBroadcaster captures sent messages for testing
type mockBroadcaster struct {
	mu       sync.Mutex
	messages []interface{}
	frames   [][]byte
}

func (m *mockBroadcaster) SendJSON(msg interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockBroadcaster) SendBinary(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.frames = append(m.frames, data)
}

func (m *mockBroadcaster) frameCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.frames)
}

func (m *mockBroadcaster) lastFrame() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.frames) == 0 {
		return nil
	}
	return m.frames[len(m.frames)-1]
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSessionIDIsUUID(t *testing.T) {
	sm := NewSessionManager()
	defer sm.StopAll()
	sess, err := sm.CreateSession("asteroids", &mockBroadcaster{})
	if err != nil {
		t.Fatal(err)
	}
	if !uuidRegex.MatchString(sess.ID) {
		t.Errorf("session ID %q is not a valid UUID v4", sess.ID)
	}
}

func TestSessionUnknownGame(t *testing.T) {
	sm := NewSessionManager()
	if _, err := sm.CreateSession("tetris", &mockBroadcaster{}); err == nil {
		t.Fatal("expected an error for an unknown cabinet")
	}
	if sm.Count() != 0 {
		t.Error("failed create should not register a session")
	}
}

func TestSessionLimit(t *testing.T) {
	sm := NewSessionManager()
	defer sm.StopAll()
	for i := 0; i < maxSessions; i++ {
		if _, err := sm.CreateSession("pong", &mockBroadcaster{}); err != nil {
			t.Fatalf("session %d: %v", i, err)
		}
	}
	if _, err := sm.CreateSession("pong", &mockBroadcaster{}); err != ErrTooManySessions {
		t.Errorf("expected ErrTooManySessions, got %v", err)
	}
}

func TestSessionBroadcastsFrames(t *testing.T) {
	sm := NewSessionManager()
	defer sm.StopAll()
	out := &mockBroadcaster{}
	sess, err := sm.CreateSession("pong", out)
	if err != nil {
		t.Fatal(err)
	}
	sess.HandleKey(pong.KeyStart, true)

	waitFor(t, func() bool { return out.frameCount() >= 2 })

	var msg struct {
		Game  string     `msgpack:"g"`
		Tick  uint64     `msgpack:"t"`
		Frame pong.Frame `msgpack:"f"`
	}
	if err := msgpack.Unmarshal(out.lastFrame(), &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Game != "pong" || msg.Tick%BroadcastEvery != 0 {
		t.Errorf("unexpected frame header %s/%d", msg.Game, msg.Tick)
	}
	if !msg.Frame.Started {
		t.Error("key should have reached the cabinet")
	}
}

func TestRemoveSessionStopsLoop(t *testing.T) {
	sm := NewSessionManager()
	out := &mockBroadcaster{}
	sess, err := sm.CreateSession("asteroids", out)
	if err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool { return out.frameCount() > 0 })

	sm.RemoveSession(sess.ID)
	select {
	case <-sess.done:
	default:
		t.Fatal("RemoveSession should wait for the loop to exit")
	}
	n := out.frameCount()
	time.Sleep(50 * time.Millisecond)
	if out.frameCount() != n {
		t.Error("no frames after removal")
	}
	if sm.GetSession(sess.ID) != nil {
		t.Error("session should be forgotten")
	}
}

func TestDecodeBinaryKey(t *testing.T) {
	key, ok := decodeBinaryKey([]byte{binaryKeyTag, 2, keyFlagDown})
	if !ok || key.Code != "ArrowUp" || !key.Down {
		t.Errorf("unexpected key %+v", key)
	}
	key, ok = decodeBinaryKey([]byte{binaryKeyTag, 7, 0})
	if !ok || key.Code != "KeyR" || key.Down {
		t.Errorf("unexpected key %+v", key)
	}
	if _, ok := decodeBinaryKey([]byte{binaryKeyTag, 99, 0}); ok {
		t.Error("out of range index should be rejected")
	}
	if _, ok := decodeBinaryKey([]byte{0x02, 0, 0}); ok {
		t.Error("wrong tag should be rejected")
	}
	if _, ok := decodeBinaryKey([]byte{binaryKeyTag, 0}); ok {
		t.Error("short message should be rejected")
	}
}

func TestListGamesSorted(t *testing.T) {
	games := ListGames()
	for i := 1; i < len(games); i++ {
		if games[i-1].Name >= games[i].Name {
			t.Fatalf("games not sorted: %v", games)
		}
	}
	for _, g := range games {
		cab, err := NewCabinet(g.Name, nil)
		if err != nil {
			t.Fatalf("%s: %v", g.Name, err)
		}
		if w, h := cab.Size(); w <= 0 || h <= 0 {
			t.Errorf("%s reports size %fx%f", g.Name, w, h)
		}
		cab.Stop()
	}
}
