package asteroids

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"arcade/audio"
)

// recordingSink counts every sound trigger for assertions
type recordingSink struct {
	mu         sync.Mutex
	lasers     int
	hyperspace int
	explosions []audio.Tier
	beeps      []float64
	hums       int
	humStops   int
}

func (r *recordingSink) FireLaser() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lasers++
}

func (r *recordingSink) PlayExplosion(t audio.Tier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.explosions = append(r.explosions, t)
}

func (r *recordingSink) PlayHyperspace() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hyperspace++
}

func (r *recordingSink) PlayEngineHum() audio.Hum {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hums++
	return &recordedHum{sink: r}
}

func (r *recordingSink) Beep(freq, volume float64, wave audio.Waveform, d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beeps = append(r.beeps, freq)
}

func (r *recordingSink) snapshot() recordingSink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return recordingSink{
		lasers:     r.lasers,
		hyperspace: r.hyperspace,
		explosions: append([]audio.Tier(nil), r.explosions...),
		beeps:      append([]float64(nil), r.beeps...),
		hums:       r.hums,
		humStops:   r.humStops,
	}
}

type recordedHum struct {
	sink    *recordingSink
	stopped bool
}

func (h *recordedHum) Stop() {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	if !h.stopped {
		h.stopped = true
		h.sink.humStops++
	}
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

var testBounds = Bounds{W: DefaultWidth, H: DefaultHeight}

// newTestState returns a started cabinet with an empty field
func newTestState(t *testing.T, sink audio.Sink) *State {
	t.Helper()
	st := NewState(testBounds, sink, testRand())
	t.Cleanup(st.Shutdown)
	st.Started = true
	st.InitialCount = 1
	st.UFOTimer = 1e9
	return st
}

// roundRock is a regular asteroid with every vertex on its radius
func roundRock(x, y, r float64) Asteroid {
	vertices := make([]float64, MinSides)
	for i := range vertices {
		vertices[i] = 1
	}
	return Asteroid{X: x, Y: y, R: r, Sides: MinSides, Vertices: vertices}
}
