package asteroids

import (
	"math/rand/v2"

	"arcade/audio"
)

// State is everything one Asteroids cabinet simulates. The rule functions
// in this package take it by pointer and mutate it in place; only one of
// them runs at a time.
type State struct {
	Bounds Bounds

	Ship      Ship
	Bullets   []Bullet
	Asteroids []Asteroid
	Particles []Particle
	Debris    []Debris
	UFO       *UFO
	UFOTimer  float64 // frames until the next saucer

	Score int
	Lives int
	Wave  int

	Started  bool
	GameOver bool

	HyperspaceCooldown int
	Exploding          bool
	ExplosionTime      int
	Invincible         bool
	InvincibleTime     int

	// asteroids at the start of the current wave, for heartbeat pacing
	InitialCount int

	destroyed int // asteroids destroyed during the current frame
	rng       *rand.Rand
	sfx       audio.Sink
	beat      *Heartbeat
	hum       audio.Hum
}

// NewState creates an unstarted cabinet. A nil sink is silent; a nil rng
// is seeded randomly.
func NewState(b Bounds, sfx audio.Sink, rng *rand.Rand) *State {
	if sfx == nil {
		sfx = audio.Nop{}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &State{
		Bounds: b,
		Ship:   NewShip(b),
		Lives:  StartingLives,
		Wave:   1,
		rng:    rng,
		sfx:    sfx,
		beat:   NewHeartbeat(sfx),
	}
}

// Heartbeat exposes the cabinet's metronome
func (st *State) Heartbeat() *Heartbeat {
	return st.beat
}

func (st *State) stopHum() {
	if st.hum != nil {
		st.hum.Stop()
		st.hum = nil
	}
}

// endGame freezes the simulation and silences the cabinet
func (st *State) endGame() {
	st.GameOver = true
	st.Ship.Thrusting = false
	st.stopHum()
	st.beat.Stop()
}

// Shutdown releases everything that makes sound on its own
func (st *State) Shutdown() {
	st.stopHum()
	st.beat.Stop()
}
