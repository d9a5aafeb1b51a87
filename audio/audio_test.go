package audio

import (
	"bytes"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the sample count and peak level
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not end within %d samples", limit)
	return total, peak
}

func TestQueueRecordsCues(t *testing.T) {
	q := NewQueue()
	q.FireLaser()
	q.PlayExplosion(TierMedium)
	q.PlayHyperspace()
	q.Beep(110, 0.5, WaveSquare, 100*time.Millisecond)

	cues := q.Drain()
	if len(cues) != 4 {
		t.Fatalf("expected 4 cues, got %d", len(cues))
	}
	if cues[0].Name != CueLaser {
		t.Errorf("expected laser first, got %s", cues[0].Name)
	}
	if cues[1].Tier != "medium" {
		t.Errorf("expected medium tier, got %q", cues[1].Tier)
	}
	beepCue := cues[3]
	if beepCue.Freq != 110 || beepCue.Wave != "square" || beepCue.Ms != 100 {
		t.Errorf("unexpected beep cue %+v", beepCue)
	}
	if q.Len() != 0 {
		t.Error("drain should empty the queue")
	}
	if q.Drain() != nil {
		t.Error("second drain should return nil")
	}
}

func TestQueueHumStopsOnce(t *testing.T) {
	q := NewQueue()
	h := q.PlayEngineHum()
	h.Stop()
	h.Stop()

	cues := q.Drain()
	if len(cues) != 2 {
		t.Fatalf("expected start+stop cues, got %d", len(cues))
	}
	if cues[0].Name != CueHumStart || cues[1].Name != CueHumStop {
		t.Errorf("unexpected cue order %s, %s", cues[0].Name, cues[1].Name)
	}
	if cues[0].ID == 0 || cues[0].ID != cues[1].ID {
		t.Errorf("hum cues should share a non-zero id, got %d and %d", cues[0].ID, cues[1].ID)
	}
}

func TestQueueDropsOldestWhenFull(t *testing.T) {
	q := NewQueue()
	for i := 0; i < maxQueuedCues+10; i++ {
		q.FireLaser()
	}
	if q.Len() != maxQueuedCues {
		t.Errorf("expected queue capped at %d, got %d", maxQueuedCues, q.Len())
	}
}

func TestParseWaveformRoundTrip(t *testing.T) {
	for _, w := range []Waveform{WaveSine, WaveSquare, WaveTriangle, WaveSawtooth} {
		if got := ParseWaveform(w.String()); got != w {
			t.Errorf("ParseWaveform(%q) = %v, want %v", w.String(), got, w)
		}
	}
	if ParseWaveform("bogus") != WaveSine {
		t.Error("unknown names should fall back to sine")
	}
}

func TestSynthClipsAreFiniteAndAudible(t *testing.T) {
	s := NewSynth(0)
	limit := 3 * int(SampleRate)
	clips := map[string]beep.Streamer{
		"laser":      s.Laser(),
		"small":      s.Explosion(TierSmall),
		"big":        s.Explosion(TierBig),
		"hyperspace": s.Hyperspace(),
		"tone":       s.Tone(440, 0.5, WaveSquare, 100*time.Millisecond),
	}
	for name, clip := range clips {
		n, peak := drain(t, clip, limit)
		if n == 0 {
			t.Errorf("%s: produced no samples", name)
		}
		if peak == 0 {
			t.Errorf("%s: produced only silence", name)
		}
	}
}

func TestSynthToneLength(t *testing.T) {
	s := NewSynth(SampleRate)
	n, _ := drain(t, s.Tone(110, 0.5, WaveSquare, 100*time.Millisecond), int(SampleRate))
	want := SampleRate.N(100 * time.Millisecond)
	if n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
}

func TestBigExplosionOutlastsSmall(t *testing.T) {
	s := NewSynth(0)
	limit := 3 * int(SampleRate)
	small, _ := drain(t, s.Explosion(TierSmall), limit)
	big, _ := drain(t, s.Explosion(TierBig), limit)
	if big <= small {
		t.Errorf("big explosion (%d samples) should outlast small (%d)", big, small)
	}
}

func TestRenderWAV(t *testing.T) {
	s := NewSynth(0)
	data, err := s.RenderWAV(Cue{Name: CueBeep, Freq: 110, Vol: 0.5, Wave: "square", Ms: 100})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Error("expected RIFF header")
	}
	if !bytes.Contains(data[:16], []byte("WAVE")) {
		t.Error("expected WAVE format tag")
	}
	// 100ms of 16-bit stereo plus header
	minLen := SampleRate.N(100*time.Millisecond) * 4
	if len(data) < minLen {
		t.Errorf("expected at least %d bytes, got %d", minLen, len(data))
	}

	if _, err := s.RenderWAV(Cue{Name: CueHumStart}); err == nil {
		t.Error("hum cue should not render")
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	s.FireLaser()
	s.PlayExplosion(TierBig)
	s.PlayHyperspace()
	s.Beep(1, 1, WaveSine, time.Millisecond)
	s.PlayEngineHum().Stop()
}
