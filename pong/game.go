package pong

import (
	"sync"
	"time"

	"arcade/audio"
)

const (
	DefaultWidth  = 1200.0
	DefaultHeight = 800.0
	FPS           = 60
	TickDuration  = time.Second / FPS
	WinningScore  = 10
	RestartDelay  = 3 * time.Second
)

// Key codes, matching KeyboardEvent.code
const (
	KeyUp    = "ArrowUp"
	KeyDown  = "ArrowDown"
	KeyStart = "Space"
)

const (
	BannerStart       = "Press SPACE to Start"
	BannerPlayerWins  = "PLAYER WINS!"
	BannerComputerWin = "COMPUTER WINS!"
)

// Config for a cabinet. Now is the wall clock used for the post-game
// lockout; nil means time.Now.
type Config struct {
	Width, Height float64
	Sound         audio.Sink
	Now           func() time.Time
}

// Game is one pong table
type Game struct {
	mu       sync.Mutex
	cfg      Config
	keys     map[string]bool
	tick     uint64
	stop     chan struct{}
	stopOnce sync.Once
	stopped  bool

	ball     Ball
	player   Paddle
	computer Paddle
	started  bool
	over     bool
	// unlockAt holds off a new game after a win
	unlockAt time.Time
}

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
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Game{
		cfg:      cfg,
		keys:     make(map[string]bool),
		stop:     make(chan struct{}),
		ball:     NewBall(cfg.Width/2, cfg.Height/2),
		player:   NewPaddle(cfg.Width-(DefaultWidth-PlayerX), cfg.Height),
		computer: NewPaddle(ComputerX, cfg.Height),
	}
}

// unlockLocked clears a finished game once the lockout has passed
func (g *Game) unlockLocked() {
	if g.over && !g.cfg.Now().Before(g.unlockAt) {
		g.over = false
		g.player.Score = 0
		g.computer.Score = 0
	}
}

// HandleKey records a key transition. Space serves a new game when the
// table is idle.
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
	g.keys[code] = true

	g.unlockLocked()
	if code == KeyStart && !g.started && !g.over {
		g.started = true
		g.player.Score = 0
		g.computer.Score = 0
		g.ball.Reset(g.cfg.Width/2, g.cfg.Height/2, -1)
		startBeep.play(g.cfg.Sound)
	}
}

// Update runs one frame
func (g *Game) Update() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}
	g.tick++
	g.unlockLocked()
	if !g.started {
		return
	}

	h := g.cfg.Height
	DrivePlayer(&g.player, g.keys[KeyUp], g.keys[KeyDown], h)
	DriveComputer(&g.computer, g.ball.Y, h)
	g.ball.Update(&g.player, &g.computer, g.cfg.Width, h, g.cfg.Sound)

	if g.player.Score >= WinningScore || g.computer.Score >= WinningScore {
		g.started = false
		g.over = true
		g.unlockAt = g.cfg.Now().Add(RestartDelay)
		winBeep.play(g.cfg.Sound)
	}
}

// Tick returns the number of frames run so far
func (g *Game) Tick() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tick
}

// Run drives the table at FPS until Stop
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

func (g *Game) Stop() {
	g.stopOnce.Do(func() {
		close(g.stop)
	})
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = true
}
