package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"arcade/asteroids"
	"arcade/pong"
)

const drawInterval = time.Second / 30

// Game is the part of a cabinet the terminal drives
type Game interface {
	HandleKey(code string, down bool)
	Run(observe func(tick uint64))
	Stop()
}

// App runs one cabinet in a terminal until Esc or Ctrl-C
type App struct {
	screen tcell.Screen
	game   Game
	render func(tcell.Screen)
	holds  *Holds
	now    func() time.Time
	quit   chan struct{}
}

func newApp(screen tcell.Screen, game Game, render func(tcell.Screen)) *App {
	return &App{
		screen: screen,
		game:   game,
		render: render,
		holds:  NewHolds(HoldRelease),
		now:    time.Now,
		quit:   make(chan struct{}),
	}
}

// NewAsteroidsApp wires an asteroids cabinet to the screen
func NewAsteroidsApp(screen tcell.Screen, g *asteroids.Game) *App {
	return newApp(screen, g, func(s tcell.Screen) {
		f := g.Frame()
		DrawAsteroids(NewCanvas(s, f.W, f.H), f)
	})
}

// NewPongApp wires a pong cabinet to the screen
func NewPongApp(screen tcell.Screen, g *pong.Game) *App {
	return newApp(screen, g, func(s tcell.Screen) {
		f := g.Frame()
		DrawPong(NewCanvas(s, f.W, f.H), f)
	})
}

// Run drives the cabinet and the screen until the player quits. The
// caller owns the screen and finalizes it afterwards.
func (a *App) Run() {
	go a.game.Run(nil)
	defer a.game.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(drawInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.HandleEvent(ev) {
				close(a.quit)
				return
			}
		case <-ticker.C:
			a.releaseLapsed()
			a.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to keep going
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		code, ok := KeyCode(ev)
		if !ok {
			return true
		}
		switch a.holds.Press(code, a.now()) {
		case StrokeDown:
			a.game.HandleKey(code, true)
		case StrokeRetap:
			a.game.HandleKey(code, false)
			a.game.HandleKey(code, true)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) releaseLapsed() {
	for _, code := range a.holds.Expire(a.now()) {
		a.game.HandleKey(code, false)
	}
}

// Draw repaints the current frame
func (a *App) Draw() {
	a.screen.Clear()
	a.render(a.screen)
	a.screen.Show()
}
