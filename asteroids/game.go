package asteroids

import (
	"math/rand/v2"
	"sync"
	"time"

	"arcade/audio"
)

const (
	DefaultWidth  = 1200.0
	DefaultHeight = 800.0
	TickDuration  = time.Second / FPS
)

// Config for a cabinet. Zero values select the default field and silence.
type Config struct {
	Width, Height float64
	Sound         audio.Sink
	Seed          uint64 // zero picks a random seed
}

// Game owns one cabinet: its state, the held keys and the frame loop
type Game struct {
	mu       sync.Mutex
	cfg      Config
	rng      *rand.Rand
	st       *State
	keys     map[string]bool
	tick     uint64
	stop     chan struct{}
	stopOnce sync.Once
	stopped  bool
}

// NewGame creates an unstarted cabinet
func NewGame(cfg Config) *Game {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Sound == nil {
		cfg.Sound = audio.Nop{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Game{
		cfg:  cfg,
		rng:  rng,
		st:   NewState(Bounds{W: cfg.Width, H: cfg.Height}, cfg.Sound, rng),
		keys: make(map[string]bool),
		stop: make(chan struct{}),
	}
}

// HandleKey records a key transition. Discrete actions fire on the press
// only, so auto-repeat while a key is held does nothing. The press that
// starts a round does nothing else.
func (g *Game) HandleKey(code string, down bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	if !down {
		delete(g.keys, code)
		return
	}
	if g.keys[code] {
		return
	}
	g.keys[code] = true

	st := g.st
	if !st.Started {
		StartRound(st)
		return
	}
	switch {
	case code == KeyFire:
		Fire(st)
	case isHyperspaceKey(code):
		Hyperspace(st)
	case code == KeyRestart && st.GameOver:
		g.resetLocked()
	}
}

// resetLocked returns the cabinet to its unstarted state
func (g *Game) resetLocked() {
	g.st.Shutdown()
	g.st = NewState(g.st.Bounds, g.cfg.Sound, g.rng)
}

// Update runs one frame
func (g *Game) Update() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}
	g.tick++
	Step(g.st, inputFrom(g.keys))
}

// Frame snapshots the current state for a renderer
func (g *Game) Frame() *Frame {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot(g.st)
}

// Tick returns the number of frames run so far
func (g *Game) Tick() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tick
}

// Inspect runs fn with the live state under the cabinet lock
func (g *Game) Inspect(fn func(st *State)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.st)
}

// Run drives the cabinet at FPS until Stop. observe, if set, is called
// after every frame outside the lock.
func (g *Game) Run(observe func(tick uint64)) {
	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.Update()
			if observe != nil {
				observe(g.Tick())
			}
		case <-g.stop:
			return
		}
	}
}

// Stop ends the loop and silences the heartbeat and engine hum
func (g *Game) Stop() {
	g.stopOnce.Do(func() {
		close(g.stop)
	})
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = true
	g.st.Shutdown()
}
