package asteroids

import (
	"math"
	"sync"
	"time"

	"arcade/audio"
)

const (
	MaxBeatInterval = 1000 * time.Millisecond
	MinBeatInterval = 100 * time.Millisecond
	beatExponent    = 2.0
	beatToneA       = 110.0
	beatToneB       = 115.0
	beatVolume      = 0.5
	beatLength      = 100 * time.Millisecond
)

// PaceInterval maps the fraction of the wave still alive onto the beat
// interval. The result never exceeds current, so the tempo only rises
// within a wave.
func PaceInterval(remaining, initial int, current time.Duration) time.Duration {
	if initial <= 0 {
		initial = 1
	}
	ratio := float64(remaining) / float64(initial)
	span := float64(MaxBeatInterval - MinBeatInterval)
	next := time.Duration(float64(MinBeatInterval) + span*math.Pow(ratio, beatExponent))
	if next > current {
		next = current
	}
	if next < MinBeatInterval {
		next = MinBeatInterval
	}
	return next
}

// Heartbeat is the two-tone metronome. It runs on its own wall-clock
// ticker and only ever touches the sink, never game state.
type Heartbeat struct {
	mu       sync.Mutex
	sink     audio.Sink
	interval time.Duration
	toneA    bool
	stop     chan struct{}
}

// NewHeartbeat creates a stopped metronome at the slowest pace
func NewHeartbeat(sink audio.Sink) *Heartbeat {
	return &Heartbeat{sink: sink, interval: MaxBeatInterval, toneA: true}
}

// Interval returns the current beat period
func (h *Heartbeat) Interval() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.interval
}

// Running reports whether the ticker goroutine is live
func (h *Heartbeat) Running() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stop != nil
}

// Reset returns to the slowest pace and (re)starts beating
func (h *Heartbeat) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.interval = MaxBeatInterval
	h.restartLocked()
}

// Retune recomputes the pace from the wave's remaining share and restarts
// the ticker at the new period
func (h *Heartbeat) Retune(remaining, initial int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.interval = PaceInterval(remaining, initial, h.interval)
	h.restartLocked()
}

// Stop halts the ticker. Safe to call repeatedly.
func (h *Heartbeat) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
}

func (h *Heartbeat) stopLocked() {
	if h.stop != nil {
		close(h.stop)
		h.stop = nil
	}
}

func (h *Heartbeat) restartLocked() {
	h.stopLocked()
	stop := make(chan struct{})
	h.stop = stop
	go h.run(h.interval, stop)
}

func (h *Heartbeat) run(interval time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h.beat(stop)
		case <-stop:
			return
		}
	}
}

func (h *Heartbeat) beat(stop chan struct{}) {
	h.mu.Lock()
	if h.stop != stop {
		// superseded between the tick and the lock
		h.mu.Unlock()
		return
	}
	freq := beatToneB
	if h.toneA {
		freq = beatToneA
	}
	h.toneA = !h.toneA
	h.mu.Unlock()

	h.sink.Beep(freq, beatVolume, audio.WaveSquare, beatLength)
}
