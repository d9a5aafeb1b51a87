package asteroids

import (
	"math"
	"strconv"
)

// Banner and HUD text
const (
	BannerStart      = "Press Any Key to Start"
	BannerGameOver   = "GAME OVER"
	BannerRestart    = "Press R to Restart"
	HyperspaceNotice = "Hyperspace cooling down..."
)

const (
	lifeIconX    = 20.0
	lifeIconStep = ShipRadius + 10
	lifeIconY    = 60.0
)

// ShipView is the ship outline plus its exhaust flame while thrusting
type ShipView struct {
	Outline    Polygon `msgpack:"o"`
	Flame      Polygon `msgpack:"f,omitempty"`
	FlameColor string  `msgpack:"fc,omitempty"`
}

type SparkView struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Size  float64 `msgpack:"s"`
	Color string  `msgpack:"c"`
}

type DebrisView struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Angle float64 `msgpack:"a"`
	Size  float64 `msgpack:"s"`
	Alpha float64 `msgpack:"al"`
}

type UFOView struct {
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	W       float64 `msgpack:"w"`
	H       float64 `msgpack:"h"`
	Bullets []Vec   `msgpack:"b"`
}

// Frame is a self-contained snapshot of everything a renderer draws. It
// shares no memory with the live State.
type Frame struct {
	W         float64 `msgpack:"w"`
	H         float64 `msgpack:"h"`
	Started   bool    `msgpack:"started"`
	GameOver  bool    `msgpack:"over"`
	Score     int     `msgpack:"score"`
	Lives     int     `msgpack:"lives"`
	Wave      int     `msgpack:"wave"`
	ScoreText string  `msgpack:"st"`

	Ship      *ShipView `msgpack:"ship,omitempty"`
	LifeIcons []Polygon `msgpack:"icons"`
	// HyperspaceAlpha fades the cooldown notice, zero once ready
	HyperspaceAlpha float64 `msgpack:"hyp"`

	Asteroids []Polygon    `msgpack:"ast"`
	Bullets   []Vec        `msgpack:"bul"`
	Particles []SparkView  `msgpack:"par"`
	Debris    []DebrisView `msgpack:"deb"`
	UFO       *UFOView     `msgpack:"ufo,omitempty"`

	Banners []string `msgpack:"ban,omitempty"`
}

// Snapshot renders st into a Frame. Before the round starts only the start
// banner is shown.
func Snapshot(st *State) *Frame {
	f := &Frame{
		W:        st.Bounds.W,
		H:        st.Bounds.H,
		Started:  st.Started,
		GameOver: st.GameOver,
		Score:    st.Score,
		Lives:    st.Lives,
		Wave:     st.Wave,
	}
	if !st.Started {
		f.Banners = []string{BannerStart}
		return f
	}
	f.ScoreText = "Score: " + strconv.Itoa(st.Score)

	f.LifeIcons = make([]Polygon, 0, st.Lives)
	for i := 0; i < st.Lives; i++ {
		f.LifeIcons = append(f.LifeIcons, shipOutline(lifeIconX+float64(i)*lifeIconStep, lifeIconY, ShipRadius, ShipStartAngle))
	}
	if st.HyperspaceCooldown > 0 {
		f.HyperspaceAlpha = math.Round(float64(st.HyperspaceCooldown)/HyperspaceCooldown*100) / 100
	}

	for _, p := range st.Particles {
		f.Particles = append(f.Particles, SparkView{X: p.X, Y: p.Y, Size: p.Size, Color: p.Color})
	}
	for i := range st.Debris {
		d := &st.Debris[i]
		f.Debris = append(f.Debris, DebrisView{X: d.X, Y: d.Y, Angle: d.Angle, Size: d.Size, Alpha: d.Alpha()})
	}
	f.Asteroids = make([]Polygon, len(st.Asteroids))
	for i := range st.Asteroids {
		f.Asteroids[i] = AsteroidPolygon(&st.Asteroids[i])
	}

	if st.ShipVisible() {
		view := &ShipView{Outline: ShipPolygon(&st.Ship)}
		if st.Ship.Thrusting {
			view.Flame, view.FlameColor = flame(st)
		}
		f.Ship = view
	}

	for _, b := range st.Bullets {
		f.Bullets = append(f.Bullets, Vec{X: b.X, Y: b.Y})
	}
	if u := st.UFO; u != nil && u.Alive {
		view := &UFOView{X: u.X, Y: u.Y, W: u.W, H: u.H}
		for _, s := range u.Bullets {
			view.Bullets = append(view.Bullets, Vec{X: s.X, Y: s.Y})
		}
		f.UFO = view
	}

	if st.GameOver {
		f.Banners = []string{BannerGameOver, BannerRestart}
	}
	return f
}

// flame is the flickering exhaust triangle behind the ship
func flame(st *State) (Polygon, string) {
	s := &st.Ship
	cos, sin := math.Cos(s.A), math.Sin(s.A)
	color := "#88ccff"
	if st.rng.Float64() < 0.2 {
		color = "white"
	}
	return Polygon{
		{X: s.X - 0.4*s.R*(cos+sin), Y: s.Y + 0.4*s.R*(sin-cos)},
		{X: s.X - (1.2+st.rng.Float64()*0.4)*s.R*cos, Y: s.Y + (1.2+st.rng.Float64()*0.4)*s.R*sin},
		{X: s.X - 0.4*s.R*(cos-sin), Y: s.Y + 0.4*s.R*(sin+cos)},
	}, color
}
