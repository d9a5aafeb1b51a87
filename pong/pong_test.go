package pong

import (
	"sync"
	"testing"
	"time"

	"arcade/audio"
)

type beepSink struct {
	audio.Nop
	mu    sync.Mutex
	freqs []float64
}

func (b *beepSink) Beep(freq, volume float64, wave audio.Waveform, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.freqs = append(b.freqs, freq)
}

func (b *beepSink) last() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.freqs) == 0 {
		return 0
	}
	return b.freqs[len(b.freqs)-1]
}

func table() (Paddle, Paddle) {
	return NewPaddle(PlayerX, DefaultHeight), NewPaddle(ComputerX, DefaultHeight)
}

func TestBallBouncesOffWalls(t *testing.T) {
	sink := &beepSink{}
	player, computer := table()

	b := NewBall(600, 3)
	b.YSpeed = -5
	b.Update(&player, &computer, DefaultWidth, DefaultHeight, sink)
	if b.YSpeed != 5 || b.Y != BallRadius {
		t.Errorf("top wall should reflect, got y=%f vy=%f", b.Y, b.YSpeed)
	}

	b = NewBall(600, DefaultHeight-3)
	b.YSpeed = 5
	b.Update(&player, &computer, DefaultWidth, DefaultHeight, sink)
	if b.YSpeed != -5 || b.Y != DefaultHeight-BallRadius {
		t.Errorf("bottom wall should reflect, got y=%f vy=%f", b.Y, b.YSpeed)
	}
	if sink.last() != 300 {
		t.Errorf("expected a 300Hz wall beep, got %f", sink.last())
	}
}

func TestBallOffLeftScoresForPlayer(t *testing.T) {
	sink := &beepSink{}
	player, computer := table()
	b := NewBall(2, 400)
	b.XSpeed = -BallSpeed
	b.Update(&player, &computer, DefaultWidth, DefaultHeight, sink)

	if player.Score != 1 || computer.Score != 0 {
		t.Errorf("player should score, got %d-%d", player.Score, computer.Score)
	}
	if b.X != DefaultWidth/2 || b.XSpeed != BallSpeed {
		t.Errorf("ball should serve right from centre, got x=%f vx=%f", b.X, b.XSpeed)
	}
	if sink.last() != 600 {
		t.Errorf("expected a 600Hz score beep, got %f", sink.last())
	}
}

func TestBallOffRightScoresForComputer(t *testing.T) {
	player, computer := table()
	b := NewBall(DefaultWidth-2, 400)
	b.Update(&player, &computer, DefaultWidth, DefaultHeight, audio.Nop{})

	if computer.Score != 1 || player.Score != 0 {
		t.Errorf("computer should score, got %d-%d", player.Score, computer.Score)
	}
	if b.XSpeed != -BallSpeed {
		t.Errorf("ball should serve left, got vx=%f", b.XSpeed)
	}
}

func TestBallHitsPlayerPaddle(t *testing.T) {
	sink := &beepSink{}
	player, computer := table()
	player.YSpeed = 4
	b := NewBall(PlayerX-10, player.Centre())
	b.Update(&player, &computer, DefaultWidth, DefaultHeight, sink)

	if b.XSpeed >= 0 {
		t.Errorf("paddle should send the ball back left, got vx=%f", b.XSpeed)
	}
	if b.YSpeed != 2 {
		t.Errorf("half the paddle speed should carry over, got vy=%f", b.YSpeed)
	}
	if sink.last() != 200 {
		t.Errorf("expected a 200Hz paddle beep, got %f", sink.last())
	}
}

func TestBallHitsComputerPaddle(t *testing.T) {
	player, computer := table()
	b := NewBall(ComputerX+PaddleWidth+10, computer.Centre())
	b.XSpeed = -BallSpeed
	b.Update(&player, &computer, DefaultWidth, DefaultHeight, audio.Nop{})
	if b.XSpeed != BallSpeed {
		t.Errorf("computer paddle should send the ball right, got vx=%f", b.XSpeed)
	}
}

func TestComputerTracksBall(t *testing.T) {
	_, computer := table()
	start := computer.Y

	DriveComputer(&computer, computer.Centre()+100, DefaultHeight)
	if computer.Y != start+ComputerSpeed {
		t.Errorf("computer should move down at %f, moved %f", ComputerSpeed, computer.Y-start)
	}

	DriveComputer(&computer, computer.Centre()-100, DefaultHeight)
	if computer.Y != start {
		t.Errorf("computer should move back up, got %f", computer.Y)
	}

	DriveComputer(&computer, computer.Centre()+4, DefaultHeight)
	if computer.Y != start+4 {
		t.Errorf("small gaps should close exactly, got %f", computer.Y-start)
	}

	y := computer.Y
	DriveComputer(&computer, computer.Centre(), DefaultHeight)
	if computer.Y != y || computer.YSpeed != 0 {
		t.Error("aligned computer should stay still")
	}
}

func TestPlayerMoves(t *testing.T) {
	player, _ := table()
	start := player.Y

	DrivePlayer(&player, true, false, DefaultHeight)
	if player.Y != start-PlayerSpeed {
		t.Errorf("up should move 6px, got %f", player.Y-start)
	}
	DrivePlayer(&player, false, true, DefaultHeight)
	if player.Y != start {
		t.Errorf("down should move back, got %f", player.Y)
	}
	DrivePlayer(&player, false, false, DefaultHeight)
	if player.Y != start || player.YSpeed != 0 {
		t.Error("no input should leave the paddle still")
	}
}

func TestPaddleClampsToField(t *testing.T) {
	p := NewPaddle(PlayerX, DefaultHeight)
	p.Y = 2
	p.Move(-PlayerSpeed, DefaultHeight)
	if p.Y != 0 || p.YSpeed != 0 {
		t.Errorf("paddle should stop at the top without spin, got y=%f vy=%f", p.Y, p.YSpeed)
	}
	p.Y = DefaultHeight - PaddleHeight - 1
	p.Move(PlayerSpeed, DefaultHeight)
	if p.Y != DefaultHeight-PaddleHeight || p.YSpeed != 0 {
		t.Errorf("paddle should stop at the bottom, got y=%f", p.Y)
	}
}

// fakeClock is a settable wall clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestGameStartsOnSpace(t *testing.T) {
	sink := &beepSink{}
	g := NewGame(Config{Sound: sink})
	defer g.Stop()

	if f := g.Frame(); f.Started || f.Banner != BannerStart {
		t.Fatalf("expected idle table with start banner, got %+v", f)
	}
	g.HandleKey(KeyUp, true)
	if g.Frame().Started {
		t.Fatal("only space should start")
	}
	g.HandleKey(KeyStart, true)
	f := g.Frame()
	if !f.Started || f.Banner != "" {
		t.Fatal("space should start the game")
	}
	if sink.last() != 800 {
		t.Errorf("expected a start beep, got %f", sink.last())
	}
	// serve goes toward the computer
	g.Update()
	if g.Frame().BallX >= DefaultWidth/2 {
		t.Error("first serve should head left")
	}
}

func TestGameWinLockout(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	sink := &beepSink{}
	g := NewGame(Config{Sound: sink, Now: clock.Now})
	defer g.Stop()

	g.HandleKey(KeyStart, true)
	g.HandleKey(KeyStart, false)
	g.mu.Lock()
	g.player.Score = WinningScore - 1
	g.ball.X, g.ball.XSpeed = 2, -BallSpeed
	g.mu.Unlock()
	g.Update()

	f := g.Frame()
	if f.Started || !f.GameOver || f.Banner != BannerPlayerWins {
		t.Fatalf("player should have won, got %+v", f)
	}
	if sink.last() != 1000 {
		t.Errorf("expected a win beep, got %f", sink.last())
	}

	clock.advance(RestartDelay - time.Millisecond)
	g.HandleKey(KeyStart, true)
	g.HandleKey(KeyStart, false)
	if f := g.Frame(); f.Started || f.PlayerScore != WinningScore {
		t.Fatal("a new game should wait out the lockout")
	}

	clock.advance(time.Millisecond)
	if f := g.Frame(); f.GameOver || f.PlayerScore != 0 || f.Banner != BannerStart {
		t.Fatalf("lockout expiry should clear the table, got %+v", f)
	}
	g.HandleKey(KeyStart, true)
	if !g.Frame().Started {
		t.Error("space should start after the lockout")
	}
}

func TestGameIdleDoesNotMove(t *testing.T) {
	g := NewGame(Config{})
	defer g.Stop()
	before := g.Frame()
	g.Update()
	after := g.Frame()
	if before.BallX != after.BallX || g.Tick() != 1 {
		t.Error("idle table should tick without moving the ball")
	}
}

func TestGameStop(t *testing.T) {
	g := NewGame(Config{})
	done := make(chan struct{})
	go func() {
		g.Run(nil)
		close(done)
	}()
	g.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return after Stop")
	}
	before := g.Tick()
	g.Update()
	g.HandleKey(KeyStart, true)
	if g.Tick() != before || g.Frame().Started {
		t.Error("stopped table should ignore updates and keys")
	}
}
