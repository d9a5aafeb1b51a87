// Package speaker plays audio cues on the local sound device. It is the only
// package that links the device backend; games and the server only need the
// audio.Sink interface.
package speaker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	device "github.com/gopxl/beep/speaker"

	"arcade/audio"
)

// Speaker plays every trigger on the local audio device
type Speaker struct {
	synth  *audio.Synth
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// Open initializes the local device. Callers should fall back to audio.Nop
// when it fails.
func Open() (*Speaker, error) {
	synth := audio.NewSynth(audio.SampleRate)
	if err := device.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{synth: synth, mixer: &beep.Mixer{}}
	device.Play(s.mixer)
	return s, nil
}

func (s *Speaker) add(st beep.Streamer) {
	if st == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	device.Lock()
	s.mixer.Add(st)
	device.Unlock()
}

func (s *Speaker) FireLaser()                 { s.add(s.synth.Laser()) }
func (s *Speaker) PlayExplosion(t audio.Tier) { s.add(s.synth.Explosion(t)) }
func (s *Speaker) PlayHyperspace()            { s.add(s.synth.Hyperspace()) }

func (s *Speaker) Beep(freq, volume float64, wave audio.Waveform, d time.Duration) {
	s.add(s.synth.Tone(freq, volume, wave, d))
}

func (s *Speaker) PlayEngineHum() audio.Hum {
	h := &stoppable{Streamer: s.synth.EngineHum()}
	s.add(h)
	return h
}

// Close silences everything still playing
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	device.Lock()
	s.mixer.Clear()
	device.Unlock()
}

// stoppable ends its inner streamer once Stop is called; the mixer then
// drops it
type stoppable struct {
	beep.Streamer
	stopped atomic.Bool
}

func (h *stoppable) Stream(samples [][2]float64) (n int, ok bool) {
	if h.stopped.Load() {
		return 0, false
	}
	return h.Streamer.Stream(samples)
}

func (h *stoppable) Stop() {
	h.stopped.Store(true)
}
