package pong

// Rect is an axis-aligned box in field coordinates
type Rect struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
	W float64 `msgpack:"w"`
	H float64 `msgpack:"h"`
}

// Frame is what a renderer needs for one pong frame. The net is drawn at
// NetX; the computer's score sits at W/4 and the player's at 3W/4.
type Frame struct {
	W             float64 `msgpack:"w"`
	H             float64 `msgpack:"h"`
	NetX          float64 `msgpack:"net"`
	Started       bool    `msgpack:"started"`
	GameOver      bool    `msgpack:"over"`
	BallX         float64 `msgpack:"bx"`
	BallY         float64 `msgpack:"by"`
	BallR         float64 `msgpack:"br"`
	Computer      Rect    `msgpack:"cp"`
	Player        Rect    `msgpack:"pp"`
	ComputerScore int     `msgpack:"cs"`
	PlayerScore   int     `msgpack:"ps"`
	Banner        string  `msgpack:"ban,omitempty"`
}

func paddleRect(p *Paddle) Rect {
	return Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Frame snapshots the table
func (g *Game) Frame() *Frame {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unlockLocked()

	f := &Frame{
		W:             g.cfg.Width,
		H:             g.cfg.Height,
		NetX:          g.cfg.Width / 2,
		Started:       g.started,
		GameOver:      g.over,
		BallX:         g.ball.X,
		BallY:         g.ball.Y,
		BallR:         g.ball.R,
		Computer:      paddleRect(&g.computer),
		Player:        paddleRect(&g.player),
		ComputerScore: g.computer.Score,
		PlayerScore:   g.player.Score,
	}
	switch {
	case g.over && g.player.Score > g.computer.Score:
		f.Banner = BannerPlayerWins
	case g.over:
		f.Banner = BannerComputerWin
	case !g.started:
		f.Banner = BannerStart
	}
	return f
}
