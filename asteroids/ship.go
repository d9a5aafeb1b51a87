package asteroids

import (
	"math"

	"arcade/audio"
)

const (
	FPS              = 60
	ShipSize         = 30.0
	ShipRadius       = ShipSize / 2
	TurnSpeed        = 360.0 // degrees per second
	ShipThrust       = 5.0   // acceleration per second
	ShipFriction     = 0.7   // velocity decay per second
	ShipStartAngle   = math.Pi / 2
	ExplosionFrames  = 60
	InvincibleFrames = 180
	StartingLives    = 3
)

// Ship is the player's vessel. A is the heading in radians with 0 pointing
// right and π/2 pointing up the screen.
type Ship struct {
	X, Y      float64
	R         float64
	A         float64
	Rot       float64
	Thrust    Vec
	Thrusting bool
}

// NewShip places a resting ship at the centre of the field
func NewShip(b Bounds) Ship {
	c := b.Centre()
	return Ship{X: c.X, Y: c.Y, R: ShipRadius, A: ShipStartAngle}
}

// ShipPolygon derives the five-point silhouette: nose, left wingtip, left
// indent, right indent, right wingtip. Collision, debris and drawing all
// use this outline.
func ShipPolygon(s *Ship) Polygon {
	return shipOutline(s.X, s.Y, s.R, s.A)
}

func shipOutline(x, y, r, a float64) Polygon {
	cos, sin := math.Cos(a), math.Sin(a)
	return Polygon{
		{X: x + 4.0/3.0*r*cos, Y: y - 4.0/3.0*r*sin},
		{X: x - r*(cos+0.6*sin), Y: y + r*(sin-0.6*cos)},
		{X: x - 0.5*r*(cos+sin), Y: y + 0.5*r*(sin-cos)},
		{X: x - 0.5*r*(cos-sin), Y: y + 0.5*r*(sin+cos)},
		{X: x - r*(cos-0.6*sin), Y: y + r*(sin+0.6*cos)},
	}
}

// Nose returns the tip of the silhouette, where bullets leave the ship
func (s *Ship) Nose() Vec {
	return Vec{
		X: s.X + 4.0/3.0*s.R*math.Cos(s.A),
		Y: s.Y - 4.0/3.0*s.R*math.Sin(s.A),
	}
}

// turnRate is the per-frame rotation while a turn key is held
func turnRate() float64 {
	return TurnSpeed / 180 * math.Pi / FPS
}

// steerShip applies held keys to rotation and thrust. The engine hum starts
// on the first thrusting frame and stops on the first frame without it.
func steerShip(st *State, in Input) {
	ship := &st.Ship
	switch {
	case in.Left:
		ship.Rot = turnRate()
	case in.Right:
		ship.Rot = -turnRate()
	default:
		ship.Rot = 0
	}

	if in.Thrust && !ship.Thrusting {
		ship.Thrusting = true
		st.stopHum()
		st.hum = st.sfx.PlayEngineHum()
	} else if !in.Thrust && ship.Thrusting {
		ship.Thrusting = false
		st.stopHum()
	}

	if ship.Thrusting {
		ship.Thrust.X += ShipThrust * math.Cos(ship.A) / FPS
		ship.Thrust.Y -= ShipThrust * math.Sin(ship.A) / FPS
	} else {
		ship.Thrust.X -= ShipFriction * ship.Thrust.X / FPS
		ship.Thrust.Y -= ShipFriction * ship.Thrust.Y / FPS
	}
}

// moveShip integrates heading and position then wraps
func moveShip(ship *Ship, b Bounds) {
	ship.A += ship.Rot
	ship.X += ship.Thrust.X
	ship.Y += ship.Thrust.Y
	ship.X, ship.Y = WrapAround(ship.X, ship.Y, ship.R, b)
}

// explodeShip moves the ship into the exploding state and scatters debris
func explodeShip(st *State) {
	st.Exploding = true
	st.ExplosionTime = ExplosionFrames
	st.Ship.Thrust = Vec{}
	st.Ship.Thrusting = false
	st.stopHum()
	st.Debris = SpawnShipDebris(st.rng, &st.Ship)
	st.sfx.PlayExplosion(audio.TierBig)
}

// shipHitByAsteroid tests the silhouette against every asteroid outline
func shipHitByAsteroid(st *State) bool {
	shipPoly := ShipPolygon(&st.Ship)
	for i := range st.Asteroids {
		if PolygonsIntersect(shipPoly, AsteroidPolygon(&st.Asteroids[i])) {
			return true
		}
	}
	return false
}

// vulnerable reports whether anything may currently destroy the ship
func (st *State) vulnerable() bool {
	return st.Started && !st.GameOver && !st.Exploding && !st.Invincible
}

// countdownExplosion runs one frame of the explosion timer. At zero a life
// is spent and the ship either respawns or the game ends.
func countdownExplosion(st *State) {
	st.ExplosionTime--
	if st.ExplosionTime > 0 {
		return
	}
	st.Lives--
	if st.Lives <= 0 {
		st.Lives = 0
		st.endGame()
		return
	}
	st.Ship = NewShip(st.Bounds)
	st.Exploding = false
	st.grantInvincibility()
}

func (st *State) grantInvincibility() {
	st.Invincible = true
	st.InvincibleTime = InvincibleFrames
}

func countdownInvincibility(st *State) {
	if !st.Invincible {
		return
	}
	st.InvincibleTime--
	if st.InvincibleTime <= 0 {
		st.Invincible = false
		st.InvincibleTime = 0
	}
}

// ShipVisible reports whether the ship should be drawn this frame; it
// blinks in ten-frame steps while invincible
func (st *State) ShipVisible() bool {
	if !st.Started || st.Exploding || st.GameOver {
		return false
	}
	if st.Invincible {
		return (st.InvincibleTime/10)%2 == 0
	}
	return true
}
