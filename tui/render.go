package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"arcade/asteroids"
	"arcade/pong"
)

var (
	styleLine   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSaucer = tcell.StyleDefault.Foreground(tcell.GetColor("#00ffe7"))
	styleShot   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleNotice = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// dim scales a color toward black by alpha in [0, 1]
func dim(c tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(float64(r)*alpha), int32(float64(g)*alpha), int32(float64(b)*alpha))
}

func colorStyle(name string) tcell.Style {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		c = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(c)
}

// DrawAsteroids renders one asteroids frame
func DrawAsteroids(c *Canvas, f *asteroids.Frame) {
	for _, p := range f.Particles {
		c.Plot(p.X, p.Y, '.', colorStyle(p.Color))
	}
	for _, d := range f.Debris {
		c.Plot(d.X, d.Y, '/', tcell.StyleDefault.Foreground(dim(tcell.ColorWhite, d.Alpha)))
	}
	for _, poly := range f.Asteroids {
		c.Polygon(poly, '*', styleLine)
	}
	if f.Ship != nil {
		if f.Ship.Flame != nil {
			c.Polygon(f.Ship.Flame, '~', colorStyle(f.Ship.FlameColor))
		}
		c.Polygon(f.Ship.Outline, '#', styleLine)
	}
	for _, b := range f.Bullets {
		c.Plot(b.X, b.Y, 'o', styleLine)
	}
	if u := f.UFO; u != nil {
		c.Rect(u.X, u.Y, u.W, u.H, '=', styleSaucer)
		for _, b := range u.Bullets {
			c.Plot(b.X, b.Y, '•', styleShot)
		}
	}

	if f.Started {
		c.Text(1, 0, f.ScoreText, styleHUD)
		for _, icon := range f.LifeIcons {
			c.Polygon(icon, '^', styleHUD)
		}
		if f.HyperspaceAlpha > 0 {
			style := tcell.StyleDefault.Foreground(dim(tcell.ColorYellow, f.HyperspaceAlpha))
			c.Text(1, c.rows-1, asteroids.HyperspaceNotice, style)
		}
	}
	for i, line := range f.Banners {
		c.TextAt(f.W/2, f.H/2+float64(i)*40, line, styleHUD)
	}
}

// DrawPong renders one pong frame
func DrawPong(c *Canvas, f *pong.Frame) {
	col, _ := c.Cell(f.NetX, 0)
	for row := 0; row < c.rows; row += 2 {
		c.set(col, row, '|', styleLine)
	}
	c.Rect(f.Computer.X, f.Computer.Y, f.Computer.W, f.Computer.H, '█', styleLine)
	c.Rect(f.Player.X, f.Player.Y, f.Player.W, f.Player.H, '█', styleLine)
	if f.Started {
		c.Plot(f.BallX, f.BallY, 'O', styleLine)
	}
	c.TextAt(f.W/4, 50, strconv.Itoa(f.ComputerScore), styleHUD)
	c.TextAt(3*f.W/4, 50, strconv.Itoa(f.PlayerScore), styleHUD)
	if f.Banner != "" {
		c.TextAt(f.W/2, f.H/2, f.Banner, styleNotice)
	}
}
