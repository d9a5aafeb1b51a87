package tui

import (
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Terminals report no key-up, so holds are inferred from the press stream.
// A first press is held for HoldRelease, long enough to reach the initial
// auto-repeat delay. Once repeats arrive less than RepeatGap apart the key
// is held for RepeatRelease after each one. A press on a held key after a
// longer gap is a fresh tap; the first auto-repeat of a held key looks the
// same, so holding Space fires twice before repeats take over.
const (
	HoldRelease   = 600 * time.Millisecond
	RepeatGap     = 150 * time.Millisecond
	RepeatRelease = 200 * time.Millisecond
)

// KeyCode translates a terminal key to a KeyboardEvent.code. Terminals
// cannot report a bare Shift, so x and Tab stand in for hyperspace.
func KeyCode(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "ArrowLeft", true
	case tcell.KeyRight:
		return "ArrowRight", true
	case tcell.KeyUp:
		return "ArrowUp", true
	case tcell.KeyDown:
		return "ArrowDown", true
	case tcell.KeyTab:
		return "ShiftLeft", true
	case tcell.KeyEnter:
		return "Enter", true
	case tcell.KeyRune:
	default:
		return "", false
	}

	r := ev.Rune()
	switch {
	case r == ' ':
		return "Space", true
	case r == 'x' || r == 'X':
		return "ShiftLeft", true
	case unicode.IsLetter(r) && r < unicode.MaxASCII:
		return "Key" + strings.ToUpper(string(r)), true
	case unicode.IsDigit(r) && r < unicode.MaxASCII:
		return "Digit" + string(r), true
	}
	return "", false
}

// Stroke classifies one terminal key event
type Stroke int

const (
	StrokeRepeat Stroke = iota // auto-repeat of a held key
	StrokeDown                 // new key-down
	StrokeRetap                // tap on a key still counted as held: up, then down
)

// Holds turns a stream of presses and auto-repeats into down/up
// transitions
type Holds struct {
	release time.Duration
	keys    map[string]*hold
}

type hold struct {
	at        time.Time
	repeating bool
}

func NewHolds(release time.Duration) *Holds {
	return &Holds{release: release, keys: make(map[string]*hold)}
}

// Press records a press of code at now
func (h *Holds) Press(code string, now time.Time) Stroke {
	k, held := h.keys[code]
	if !held {
		h.keys[code] = &hold{at: now}
		return StrokeDown
	}
	gap := now.Sub(k.at)
	k.at = now
	if gap < RepeatGap {
		k.repeating = true
		return StrokeRepeat
	}
	k.repeating = false
	return StrokeRetap
}

// Expire returns, in sorted order, the keys whose hold has lapsed
func (h *Holds) Expire(now time.Time) []string {
	var up []string
	for code, k := range h.keys {
		window := h.release
		if k.repeating {
			window = RepeatRelease
		}
		if now.Sub(k.at) >= window {
			up = append(up, code)
			delete(h.keys, code)
		}
	}
	sort.Strings(up)
	return up
}
