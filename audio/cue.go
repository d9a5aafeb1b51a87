package audio

import (
	"sync"
	"time"
)

// Cue names sent to remote clients
const (
	CueLaser      = "laser"
	CueExplosion  = "explosion"
	CueHyperspace = "hyperspace"
	CueHumStart   = "hum_start"
	CueHumStop    = "hum_stop"
	CueBeep       = "beep"
)

const maxQueuedCues = 256

// Cue is one recorded sound trigger
type Cue struct {
	Name string  `msgpack:"n" json:"n"`
	Tier string  `msgpack:"tier,omitempty" json:"tier,omitempty"`
	ID   uint32  `msgpack:"id,omitempty" json:"id,omitempty"` // hum handle
	Freq float64 `msgpack:"f,omitempty" json:"f,omitempty"`
	Vol  float64 `msgpack:"v,omitempty" json:"v,omitempty"`
	Wave string  `msgpack:"w,omitempty" json:"w,omitempty"`
	Ms   int     `msgpack:"ms,omitempty" json:"ms,omitempty"`
}

// Queue is a Sink that records cues for later delivery, e.g. alongside a
// network frame. Safe for concurrent use; the heartbeat timer and the frame
// loop both write to it.
type Queue struct {
	mu     sync.Mutex
	cues   []Cue
	nextID uint32
}

// NewQueue creates an empty cue queue
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) push(c Cue) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.cues) >= maxQueuedCues {
		// Nobody is draining, drop the oldest
		q.cues = q.cues[1:]
	}
	q.cues = append(q.cues, c)
}

// Drain returns and clears all pending cues
func (q *Queue) Drain() []Cue {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.cues) == 0 {
		return nil
	}
	out := q.cues
	q.cues = nil
	return out
}

// Len returns the number of pending cues
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.cues)
}

func (q *Queue) FireLaser() {
	q.push(Cue{Name: CueLaser})
}

func (q *Queue) PlayExplosion(t Tier) {
	q.push(Cue{Name: CueExplosion, Tier: t.String()})
}

func (q *Queue) PlayHyperspace() {
	q.push(Cue{Name: CueHyperspace})
}

func (q *Queue) PlayEngineHum() Hum {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.mu.Unlock()
	q.push(Cue{Name: CueHumStart, ID: id})
	return &queuedHum{q: q, id: id}
}

func (q *Queue) Beep(freq, volume float64, wave Waveform, d time.Duration) {
	q.push(Cue{
		Name: CueBeep,
		Freq: freq,
		Vol:  volume,
		Wave: wave.String(),
		Ms:   int(d / time.Millisecond),
	})
}

type queuedHum struct {
	q    *Queue
	id   uint32
	once sync.Once
}

func (h *queuedHum) Stop() {
	h.once.Do(func() {
		h.q.push(Cue{Name: CueHumStop, ID: h.id})
	})
}
