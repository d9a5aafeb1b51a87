package main

import (
	"fmt"
	"sort"

	"arcade/asteroids"
	"arcade/audio"
	"arcade/pong"
)

const (
	TickRate       = 60 // simulation frames per second
	BroadcastRate  = 30 // frames sent to the browser per second
	BroadcastEvery = TickRate / BroadcastRate
)

// Cabinet is one running game as seen by the server: keys in, frames out
type Cabinet interface {
	HandleKey(code string, down bool)
	Snapshot() interface{}
	Size() (w, h float64)
	Run(observe func(tick uint64))
	Stop()
}

// GameInfo describes a cabinet in the game list
type GameInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Blurb string `json:"blurb"`
}

type cabinetEntry struct {
	info  GameInfo
	build func(sfx audio.Sink) Cabinet
}

var catalog = map[string]cabinetEntry{
	"asteroids": {
		info: GameInfo{Name: "asteroids", Title: "Asteroids", Blurb: "Split rocks, dodge the saucer, survive the waves."},
		build: func(sfx audio.Sink) Cabinet {
			return asteroidsCabinet{asteroids.NewGame(asteroids.Config{Sound: sfx})}
		},
	},
	"pong": {
		info: GameInfo{Name: "pong", Title: "Pong", Blurb: "First to ten against the computer."},
		build: func(sfx audio.Sink) Cabinet {
			return pongCabinet{pong.NewGame(pong.Config{Sound: sfx})}
		},
	},
}

// ListGames returns the catalog sorted by name
func ListGames() []GameInfo {
	list := make([]GameInfo, 0, len(catalog))
	for _, e := range catalog {
		list = append(list, e.info)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// NewCabinet builds an unstarted cabinet by name
func NewCabinet(name string, sfx audio.Sink) (Cabinet, error) {
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown game %q", name)
	}
	return e.build(sfx), nil
}

type asteroidsCabinet struct {
	*asteroids.Game
}

func (c asteroidsCabinet) Snapshot() interface{} { return c.Frame() }

func (c asteroidsCabinet) Size() (float64, float64) {
	f := c.Frame()
	return f.W, f.H
}

type pongCabinet struct {
	*pong.Game
}

func (c pongCabinet) Snapshot() interface{} { return c.Frame() }

func (c pongCabinet) Size() (float64, float64) {
	f := c.Frame()
	return f.W, f.H
}
