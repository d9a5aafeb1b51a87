// Package tui draws cabinet frames as character-cell line art with tcell
// and turns terminal key presses into the cabinets' key codes.
package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"arcade/asteroids"
)

// Canvas maps a field of W x H units onto the whole screen
type Canvas struct {
	screen     tcell.Screen
	cols, rows int
	sx, sy     float64
}

// NewCanvas scales a w x h field to the screen's current size
func NewCanvas(screen tcell.Screen, w, h float64) *Canvas {
	cols, rows := screen.Size()
	c := &Canvas{screen: screen, cols: cols, rows: rows}
	if w > 0 && h > 0 {
		c.sx = float64(cols) / w
		c.sy = float64(rows) / h
	}
	return c
}

// Cell converts field coordinates to a cell
func (c *Canvas) Cell(x, y float64) (int, int) {
	return int(math.Floor(x * c.sx)), int(math.Floor(y * c.sy))
}

func (c *Canvas) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.screen.SetContent(col, row, r, nil, style)
}

// Plot marks the cell under a field point
func (c *Canvas) Plot(x, y float64, r rune, style tcell.Style) {
	col, row := c.Cell(x, y)
	c.set(col, row, r, style)
}

// Line draws a segment between two field points (Bresenham in cell space)
func (c *Canvas) Line(x0, y0, x1, y1 float64, r rune, style tcell.Style) {
	c0, r0 := c.Cell(x0, y0)
	c1, r1 := c.Cell(x1, y1)

	dx := abs(c1 - c0)
	dy := -abs(r1 - r0)
	stepX, stepY := 1, 1
	if c0 > c1 {
		stepX = -1
	}
	if r0 > r1 {
		stepY = -1
	}
	err := dx + dy
	for {
		c.set(c0, r0, r, style)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c0 += stepX
		}
		if e2 <= dx {
			err += dx
			r0 += stepY
		}
	}
}

// Polygon draws a closed outline
func (c *Canvas) Polygon(poly asteroids.Polygon, r rune, style tcell.Style) {
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		c.Line(a.X, a.Y, b.X, b.Y, r, style)
	}
}

// Rect fills an axis-aligned box
func (c *Canvas) Rect(x, y, w, h float64, r rune, style tcell.Style) {
	c0, r0 := c.Cell(x, y)
	c1, r1 := c.Cell(x+w, y+h)
	if c1 == c0 {
		c1++
	}
	if r1 == r0 {
		r1++
	}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c.set(col, row, r, style)
		}
	}
}

// Text writes s starting at a cell
func (c *Canvas) Text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		c.set(col, row, r, style)
		col++
	}
}

// TextAt writes s centred on a field point
func (c *Canvas) TextAt(x, y float64, s string, style tcell.Style) {
	col, row := c.Cell(x, y)
	c.Text(col-len([]rune(s))/2, row, s, style)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
