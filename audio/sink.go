package audio

import (
	"strings"
	"time"
)

// Tier classifies an explosion by the size of what blew up
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierBig
)

func (t Tier) String() string {
	switch t {
	case TierBig:
		return "big"
	case TierMedium:
		return "medium"
	default:
		return "small"
	}
}

// Waveform is the oscillator shape used by Beep
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveTriangle
	WaveSawtooth
)

func (w Waveform) String() string {
	switch w {
	case WaveSquare:
		return "square"
	case WaveTriangle:
		return "triangle"
	case WaveSawtooth:
		return "sawtooth"
	default:
		return "sine"
	}
}

// ParseWaveform maps a wave name back to a Waveform, defaulting to sine
func ParseWaveform(s string) Waveform {
	switch strings.ToLower(s) {
	case "square":
		return WaveSquare
	case "triangle":
		return WaveTriangle
	case "sawtooth", "saw":
		return WaveSawtooth
	default:
		return WaveSine
	}
}

// Hum is a running looped sound. Stop must be safe to call more than once.
type Hum interface {
	Stop()
}

// Sink receives fire-and-forget sound triggers from a game.
// Implementations must never block the caller.
type Sink interface {
	FireLaser()
	PlayExplosion(t Tier)
	PlayHyperspace()
	PlayEngineHum() Hum
	Beep(freq, volume float64, wave Waveform, d time.Duration)
}

// Nop discards every trigger
type Nop struct{}

func (Nop) FireLaser()                                     {}
func (Nop) PlayExplosion(Tier)                             {}
func (Nop) PlayHyperspace()                                {}
func (Nop) PlayEngineHum() Hum                             { return nopHum{} }
func (Nop) Beep(float64, float64, Waveform, time.Duration) {}

type nopHum struct{}

func (nopHum) Stop() {}
