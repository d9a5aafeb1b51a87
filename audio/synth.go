package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate used for every synthesized clip
const SampleRate = beep.SampleRate(44100)

// Synth builds beep streamers for each named effect
type Synth struct {
	sr beep.SampleRate
}

// NewSynth creates a synthesizer; a zero rate selects SampleRate
func NewSynth(sr beep.SampleRate) *Synth {
	if sr <= 0 {
		sr = SampleRate
	}
	return &Synth{sr: sr}
}

// Rate returns the synthesizer sample rate
func (s *Synth) Rate() beep.SampleRate {
	return s.sr
}

// Laser is a distorted sawtooth sweeping 1000Hz down to 100Hz
func (s *Synth) Laser() beep.Streamer {
	osc := &oscillator{
		wave: WaveSawtooth, sr: s.sr,
		f0: 1000, f1: 100, glide: s.sr.N(800 * time.Millisecond),
		g0: 0.8, g1: 0.0001, decay: s.sr.N(900 * time.Millisecond),
		total: s.sr.N(900 * time.Millisecond),
	}
	return &shaper{Streamer: osc, curve: func(x float64) float64 {
		return x * 10 / (math.Pi + math.Abs(x)) / 3
	}}
}

type explosionSettings struct {
	noiseDecay  float64 // seconds
	filterStart float64
	filterEnd   float64
	sub1Freq    float64
	sub2Freq    float64
	sub1Gain    float64
	sub2Gain    float64
	master      float64
}

func jitter(base, variance float64) float64 {
	return base + (rand.Float64()-0.5)*variance
}

func explosionFor(t Tier) explosionSettings {
	switch t {
	case TierBig:
		return explosionSettings{jitter(1.2, 0.2), jitter(1400, 100), 60, jitter(110, 10), jitter(142, 10), 2.0, 0.6, 0.4}
	case TierMedium:
		return explosionSettings{jitter(0.85, 0.1), jitter(1700, 150), 90, jitter(180, 10), jitter(210, 10), 1.6, 0.5, 0.9}
	default:
		return explosionSettings{jitter(0.35, 0.05), jitter(2200, 200), 700, jitter(300, 20), jitter(340, 20), 0.5, 0.25, 1.6}
	}
}

// Explosion mixes low-passed noise with two sliding sub-bass sines.
// Bigger tiers last longer and sit lower.
func (s *Synth) Explosion(t Tier) beep.Streamer {
	cfg := explosionFor(t)
	n := s.sr.N(time.Duration(cfg.noiseDecay * float64(time.Second)))

	noise := &lowpassNoise{
		sr: s.sr, total: n,
		cut0: cfg.filterStart, cut1: cfg.filterEnd,
	}
	body := newVolume(&envelopeDecay{Streamer: noise, g0: 1.5, g1: 0.0001, total: n}, cfg.master*0.5)

	sub1 := &oscillator{
		wave: WaveSine, sr: s.sr,
		f0: cfg.sub1Freq, f1: 5, glide: n,
		g0: cfg.sub1Gain, g1: 0.0001, decay: n,
		total: n,
	}
	sub2 := &oscillator{
		wave: WaveSine, sr: s.sr,
		f0: cfg.sub2Freq, f1: 10, glide: n,
		g0: cfg.sub2Gain, g1: 0.0001, decay: n,
		total: n,
	}
	mix := beep.Mix(body, newVolume(sub1, 0.3), newVolume(sub2, 0.3))
	return &shaper{Streamer: mix, curve: softClip}
}

// Hyperspace rises 100Hz to 1200Hz then falls to 80Hz
func (s *Synth) Hyperspace() beep.Streamer {
	half := s.sr.N(400 * time.Millisecond)
	up := &oscillator{
		wave: WaveTriangle, sr: s.sr,
		f0: 100, f1: 1200, glide: half,
		g0: 0.9, g1: 0.9, decay: half,
		total: half,
	}
	down := &oscillator{
		wave: WaveTriangle, sr: s.sr,
		f0: 1200, f1: 80, glide: half,
		g0: 0.9, g1: 0.0001, decay: s.sr.N(600 * time.Millisecond),
		total: half,
	}
	return newEnvelope(beep.Seq(up, down), s.sr.N(100*time.Millisecond), 0)
}

// EngineHum never ends on its own; wrap it in a stoppable streamer
func (s *Synth) EngineHum() beep.Streamer {
	return &humGenerator{sr: s.sr}
}

// Tone is the plain oscillator used by the heartbeat and by pong
func (s *Synth) Tone(freq, volume float64, wave Waveform, d time.Duration) beep.Streamer {
	n := s.sr.N(d)
	osc := &oscillator{
		wave: wave, sr: s.sr,
		f0: freq, f1: freq, glide: n,
		g0: 1, g1: 1, decay: n,
		total: n,
	}
	return newVolume(newEnvelope(osc, s.sr.N(2*time.Millisecond), s.sr.N(5*time.Millisecond)), volume)
}

// ForCue builds the streamer a recorded cue describes. Hum cues return nil,
// they have no finite rendering.
func (s *Synth) ForCue(c Cue) beep.Streamer {
	switch c.Name {
	case CueLaser:
		return s.Laser()
	case CueExplosion:
		switch c.Tier {
		case "big":
			return s.Explosion(TierBig)
		case "medium":
			return s.Explosion(TierMedium)
		default:
			return s.Explosion(TierSmall)
		}
	case CueHyperspace:
		return s.Hyperspace()
	case CueBeep:
		return s.Tone(c.Freq, c.Vol, ParseWaveform(c.Wave), time.Duration(c.Ms)*time.Millisecond)
	}
	return nil
}

func softClip(x float64) float64 {
	return x * 3 / (math.Pi + 2*math.Abs(x))
}

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// oscillator generates a waveform whose frequency and gain glide
// exponentially from their start to end values
type oscillator struct {
	wave   Waveform
	sr     beep.SampleRate
	f0, f1 float64
	glide  int
	g0, g1 float64
	decay  int
	total  int
	pos    int
	phase  float64
}

func expRamp(from, to float64, pos, span int) float64 {
	if span <= 0 || pos >= span {
		return to
	}
	if from <= 0 || to <= 0 {
		return from + (to-from)*float64(pos)/float64(span)
	}
	return from * math.Pow(to/from, float64(pos)/float64(span))
}

func sample(wave Waveform, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveSawtooth:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		freq := expRamp(o.f0, o.f1, o.pos, o.glide)
		gain := expRamp(o.g0, o.g1, o.pos, o.decay)
		v := sample(o.wave, o.phase) * gain
		samples[i][0] = v
		samples[i][1] = v

		o.phase += freq / float64(o.sr)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// lowpassNoise is white noise through a one-pole low-pass whose cutoff
// glides from cut0 to cut1
type lowpassNoise struct {
	sr         beep.SampleRate
	total, pos int
	cut0, cut1 float64
	last       float64
}

func (l *lowpassNoise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if l.pos >= l.total {
			return i, i > 0
		}
		cut := expRamp(l.cut0, l.cut1, l.pos, l.total)
		alpha := 1 - math.Exp(-2*math.Pi*cut/float64(l.sr))
		l.last += alpha * (rand.Float64()*2 - 1 - l.last)
		samples[i][0] = l.last
		samples[i][1] = l.last
		l.pos++
	}
	return len(samples), true
}

func (l *lowpassNoise) Err() error { return nil }

// envelopeDecay applies an exponential gain ramp over total samples
type envelopeDecay struct {
	beep.Streamer
	g0, g1 float64
	total  int
	pos    int
}

func (e *envelopeDecay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := expRamp(e.g0, e.g1, e.pos, e.total)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

// envelope applies a linear attack and a linear release. The release needs
// the stream length, so it is only applied when release > 0 and the inner
// streamer reports its end by returning fewer samples.
type envelope struct {
	beep.Streamer
	attack  int
	release int
	pos     int
}

func newEnvelope(s beep.Streamer, attack, release int) beep.Streamer {
	return &envelope{Streamer: s, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.attack > 0 && e.pos < e.attack {
			g := float64(e.pos) / float64(e.attack)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		e.pos++
	}
	if e.release > 0 && n < len(samples) {
		// Last chunk: fade the final samples to avoid a click
		start := n - e.release
		if start < 0 {
			start = 0
		}
		for i := start; i < n; i++ {
			g := float64(n-i) / float64(n-start)
			samples[i][0] *= g
			samples[i][1] *= g
		}
	}
	return n, ok
}

// shaper passes every sample through a waveshaping curve
type shaper struct {
	beep.Streamer
	curve func(float64) float64
}

func (s *shaper) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = s.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] = s.curve(samples[i][0])
		samples[i][1] = s.curve(samples[i][1])
	}
	return n, ok
}

// humGenerator is a low detuned sawtooth pair with a slow wobble
type humGenerator struct {
	sr     beep.SampleRate
	pos    int
	p1, p2 float64
}

func (h *humGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(h.pos) / float64(h.sr)
		wobble := 1 + 0.04*math.Sin(2*math.Pi*3*t)
		v := 0.12*sample(WaveSawtooth, h.p1) + 0.08*sample(WaveSine, h.p2)
		samples[i][0] = v
		samples[i][1] = v
		h.p1 += 55 * wobble / float64(h.sr)
		h.p1 -= math.Floor(h.p1)
		h.p2 += 110 / float64(h.sr)
		h.p2 -= math.Floor(h.p2)
		h.pos++
	}
	return len(samples), true
}

func (h *humGenerator) Err() error { return nil }
