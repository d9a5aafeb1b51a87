package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"arcade/audio"
)

func getSFX(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSFXNamedClips(t *testing.T) {
	h := NewSFXHandler(audio.NewSynth(8000))
	for _, target := range []string{"/sfx/laser.wav", "/sfx/hyperspace.wav", "/sfx/explosion.wav?tier=big"} {
		rec := getSFX(t, h, target)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status %d", target, rec.Code)
			continue
		}
		if rec.Header().Get("Content-Type") != "audio/wav" {
			t.Errorf("%s: content type %q", target, rec.Header().Get("Content-Type"))
		}
		body := rec.Body.Bytes()
		if len(body) < 44 || string(body[:4]) != "RIFF" || string(body[8:12]) != "WAVE" {
			t.Errorf("%s: not a WAV file", target)
		}
	}
}

func TestSFXCachesNamedClips(t *testing.T) {
	h := NewSFXHandler(audio.NewSynth(8000))
	a := getSFX(t, h, "/sfx/explosion.wav?tier=small").Body.String()
	b := getSFX(t, h, "/sfx/explosion.wav").Body.String()
	if a != b {
		t.Error("default tier should hit the cached small explosion")
	}
}

func TestSFXTone(t *testing.T) {
	h := NewSFXHandler(audio.NewSynth(8000))
	rec := getSFX(t, h, "/sfx/tone.wav?f=110&v=0.5&w=square&ms=100")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	// 100ms of 16-bit stereo at 8kHz plus the header
	if n := rec.Body.Len(); n != 44+800*4 {
		t.Errorf("unexpected clip size %d", n)
	}
}

func TestSFXRejectsBadRequests(t *testing.T) {
	h := NewSFXHandler(nil)
	cases := map[string]int{
		"/sfx/tone.wav":                   http.StatusBadRequest,
		"/sfx/tone.wav?f=-1":              http.StatusBadRequest,
		"/sfx/tone.wav?f=440&v=2":         http.StatusBadRequest,
		"/sfx/tone.wav?f=440&ms=99999":    http.StatusBadRequest,
		"/sfx/explosion.wav?tier=massive": http.StatusBadRequest,
		"/sfx/hum_start.wav":              http.StatusNotFound,
		"/sfx/nothing.wav":                http.StatusNotFound,
	}
	for target, want := range cases {
		if rec := getSFX(t, h, target); rec.Code != want {
			t.Errorf("%s: status %d, want %d", target, rec.Code, want)
		}
	}
}

func TestParseToneDefaults(t *testing.T) {
	c, ok := parseTone("300", "", "", "")
	if !ok {
		t.Fatal("frequency alone should be enough")
	}
	if c.Vol != 1 || c.Wave != "sine" || c.Ms != 100 || c.Name != audio.CueBeep {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestParseToneRejectsNaN(t *testing.T) {
	cases := [][2]string{
		{"NaN", "0.5"},
		{"440", "NaN"},
		{"nan", ""},
		{"Inf", ""},
	}
	for _, tc := range cases {
		if c, ok := parseTone(tc[0], tc[1], "square", "100"); ok {
			t.Errorf("f=%s v=%s should be rejected, got %+v", tc[0], tc[1], c)
		}
	}
}
