package main

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"arcade/audio"
)

const (
	maxToneMs   = 2000
	maxToneFreq = 8000
)

// SFXHandler serves synthesized clips as WAV files:
//
//	/sfx/laser.wav
//	/sfx/hyperspace.wav
//	/sfx/explosion.wav?tier=big
//	/sfx/tone.wav?f=110&v=0.5&w=square&ms=100
//
// Named effects are rendered once and cached.
type SFXHandler struct {
	synth *audio.Synth
	mu    sync.Mutex
	cache map[string][]byte
}

func NewSFXHandler(synth *audio.Synth) *SFXHandler {
	if synth == nil {
		synth = audio.NewSynth(0)
	}
	return &SFXHandler{synth: synth, cache: make(map[string][]byte)}
}

func (h *SFXHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/sfx/"), ".wav")
	q := r.URL.Query()

	var cue audio.Cue
	cacheable := true
	switch name {
	case audio.CueLaser, audio.CueHyperspace:
		cue = audio.Cue{Name: name}
	case audio.CueExplosion:
		tier := q.Get("tier")
		switch tier {
		case "big", "medium", "small":
		case "":
			tier = "small"
		default:
			http.Error(w, "unknown tier", http.StatusBadRequest)
			return
		}
		cue = audio.Cue{Name: name, Tier: tier}
	case "tone":
		c, ok := parseTone(q.Get("f"), q.Get("v"), q.Get("w"), q.Get("ms"))
		if !ok {
			http.Error(w, "bad tone parameters", http.StatusBadRequest)
			return
		}
		cue = c
		cacheable = false
	default:
		http.NotFound(w, r)
		return
	}

	data, err := h.render(cue, cacheable)
	if err != nil {
		log.Printf("sfx render error: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

func (h *SFXHandler) render(c audio.Cue, cacheable bool) ([]byte, error) {
	key := c.Name + ":" + c.Tier
	if cacheable {
		h.mu.Lock()
		data, ok := h.cache[key]
		h.mu.Unlock()
		if ok {
			return data, nil
		}
	}
	data, err := h.synth.RenderWAV(c)
	if err != nil {
		return nil, err
	}
	if cacheable {
		h.mu.Lock()
		h.cache[key] = data
		h.mu.Unlock()
	}
	return data, nil
}

// parseTone validates tone query parameters. Volume defaults to 1, the
// wave to sine and the length to 100ms.
func parseTone(f, v, wave, ms string) (audio.Cue, bool) {
	freq, err := strconv.ParseFloat(f, 64)
	if err != nil || !(freq > 0 && freq <= maxToneFreq) {
		return audio.Cue{}, false
	}
	vol := 1.0
	if v != "" {
		vol, err = strconv.ParseFloat(v, 64)
		if err != nil || !(vol >= 0 && vol <= 1) {
			return audio.Cue{}, false
		}
	}
	length := 100
	if ms != "" {
		length, err = strconv.Atoi(ms)
		if err != nil || length <= 0 || length > maxToneMs {
			return audio.Cue{}, false
		}
	}
	if wave == "" {
		wave = "sine"
	}
	return audio.Cue{
		Name: audio.CueBeep,
		Freq: freq,
		Vol:  vol,
		Wave: audio.ParseWaveform(wave).String(),
		Ms:   length,
	}, true
}
