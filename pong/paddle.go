package pong

const (
	PaddleWidth      = 10.0
	PaddleHeight     = 50.0
	PlayerX          = 1180.0
	ComputerX        = 10.0
	PlayerSpeed      = 6.0
	ComputerSpeed    = 5.0
	computerDeadband = 6.0
)

// Paddle is a vertical bat. YSpeed is the last applied move and feeds spin
// into the ball.
type Paddle struct {
	X, Y   float64
	W, H   float64
	YSpeed float64
	Score  int
}

// NewPaddle centres a paddle vertically at x
func NewPaddle(x, fieldH float64) Paddle {
	return Paddle{X: x, Y: fieldH/2 - PaddleHeight/2, W: PaddleWidth, H: PaddleHeight}
}

// Move shifts the paddle and clamps it to the field. A clamped move leaves
// no spin.
func (p *Paddle) Move(dy, fieldH float64) {
	p.Y += dy
	p.YSpeed = dy
	if p.Y < 0 {
		p.Y = 0
		p.YSpeed = 0
	} else if p.Y+p.H > fieldH {
		p.Y = fieldH - p.H
		p.YSpeed = 0
	}
}

// Centre is the vertical midpoint
func (p *Paddle) Centre() float64 {
	return p.Y + p.H/2
}

// DrivePlayer moves the player's paddle from the held arrows
func DrivePlayer(p *Paddle, up, down bool, fieldH float64) {
	switch {
	case up:
		p.Move(-PlayerSpeed, fieldH)
	case down:
		p.Move(PlayerSpeed, fieldH)
	default:
		p.Move(0, fieldH)
	}
}

// DriveComputer chases the ball: small gaps are closed exactly, larger ones
// at ComputerSpeed
func DriveComputer(p *Paddle, ballY, fieldH float64) {
	diff := ballY - p.Centre()
	if diff < -computerDeadband {
		diff = -ComputerSpeed
	} else if diff > computerDeadband {
		diff = ComputerSpeed
	}
	p.Move(diff, fieldH)
}
