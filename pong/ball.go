package pong

import (
	"time"

	"arcade/audio"
)

const (
	BallRadius = 5.0
	BallSpeed  = 7.0
)

// sound cues
var (
	wallBeep   = tone{300, 0.2, audio.WaveSquare}
	paddleBeep = tone{200, 0.2, audio.WaveSquare}
	scoreBeep  = tone{600, 0.4, audio.WaveTriangle}
	startBeep  = tone{800, 0.5, audio.WaveTriangle}
	winBeep    = tone{1000, 0.5, audio.WaveTriangle}
)

const beepLength = 100 * time.Millisecond

type tone struct {
	freq, vol float64
	wave      audio.Waveform
}

func (t tone) play(s audio.Sink) {
	s.Beep(t.freq, t.vol, t.wave, beepLength)
}

// Ball is the puck
type Ball struct {
	X, Y   float64
	R      float64
	XSpeed float64
	YSpeed float64
}

// NewBall places a ball at (x, y) heading right
func NewBall(x, y float64) Ball {
	return Ball{X: x, Y: y, R: BallRadius, XSpeed: BallSpeed}
}

// Reset serves from (x, y) toward dir (+1 right, -1 left)
func (b *Ball) Reset(x, y, dir float64) {
	b.X, b.Y = x, y
	b.XSpeed = BallSpeed * dir
	b.YSpeed = 0
}

// Update moves the ball one frame: bounce off the top and bottom walls,
// score when it leaves either side, then bounce off the paddle on the
// half of the field it is in
func (b *Ball) Update(player, computer *Paddle, w, h float64, sink audio.Sink) {
	b.X += b.XSpeed
	b.Y += b.YSpeed

	if b.Y-b.R < 0 {
		b.Y = b.R
		b.YSpeed = -b.YSpeed
		wallBeep.play(sink)
	} else if b.Y+b.R > h {
		b.Y = h - b.R
		b.YSpeed = -b.YSpeed
		wallBeep.play(sink)
	}

	if b.X < 0 || b.X > w {
		// leaving on the left is the player's point
		if b.X < 0 {
			player.Score++
			b.Reset(w/2, h/2, 1)
		} else {
			computer.Score++
			b.Reset(w/2, h/2, -1)
		}
		scoreBeep.play(sink)
	}

	left, right := b.X-b.R, b.X+b.R
	top, bottom := b.Y-b.R, b.Y+b.R
	onPlayerSide := left > w/2
	p := computer
	if onPlayerSide {
		p = player
	}
	if right > p.X && left < p.X+p.W && bottom > p.Y && top < p.Y+p.H {
		if onPlayerSide {
			b.XSpeed = -BallSpeed
		} else {
			b.XSpeed = BallSpeed
		}
		b.YSpeed += p.YSpeed / 2
		b.X += b.XSpeed
		paddleBeep.play(sink)
	}
}
