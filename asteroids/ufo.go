package asteroids

import (
	"math"
	"math/rand/v2"

	"arcade/audio"
)

const (
	UFOWidth          = 40.0
	UFOHeight         = 16.0
	UFOBulletSpeed    = 5.0
	UFOShootCooldown  = 120
	UFOKillScore      = 200
	ufoSparks         = 20
	ufoMinRespawnSecs = 20
	ufoRespawnSpread  = 20
)

// Neon palette for a destroyed saucer
var UFOColors = []string{"#d726ff", "#00ffe7", "#ff61a6", "#fff200"}

// UFOBullet is a saucer shot; it never wraps
type UFOBullet struct {
	X, Y   float64
	VX, VY float64
}

// UFO is the flying saucer. X, Y is its top-left corner.
type UFO struct {
	X, Y          float64
	W, H          float64
	Speed         float64
	Dir           float64 // +1 rightward, -1 leftward
	Alive         bool
	ShootCooldown int
	Bullets       []UFOBullet
}

// NewUFO spawns a saucer on a random side edge heading across the field
func NewUFO(rng *rand.Rand, b Bounds) *UFO {
	u := &UFO{
		Y:             rng.Float64() * b.H * 0.8,
		W:             UFOWidth,
		H:             UFOHeight,
		Speed:         2 + rng.Float64()*2,
		Dir:           1,
		Alive:         true,
		ShootCooldown: UFOShootCooldown,
	}
	if rng.Float64() >= 0.5 {
		u.X = b.W
		u.Dir = -1
	}
	return u
}

// Centre is the middle of the saucer body
func (u *UFO) Centre() Vec {
	return Vec{X: u.X + u.W/2, Y: u.Y + u.H/2}
}

// HitRadius approximates the body as a circle
func (u *UFO) HitRadius() float64 {
	return math.Max(u.W, u.H) / 2
}

// Update moves the saucer, fires at target when its cooldown runs out and
// advances its shots. It dies once fully past either side.
func (u *UFO) Update(rng *rand.Rand, target Vec, b Bounds) {
	u.X += u.Speed * u.Dir
	if u.X < -u.W || u.X > b.W+u.W {
		u.Alive = false
	}

	if u.ShootCooldown > 0 {
		u.ShootCooldown--
	} else {
		u.shootAt(target)
		u.ShootCooldown = UFOShootCooldown + rng.IntN(60)
	}

	kept := u.Bullets[:0]
	for _, s := range u.Bullets {
		s.X += s.VX
		s.Y += s.VY
		if s.X > 0 && s.X < b.W && s.Y > 0 && s.Y < b.H {
			kept = append(kept, s)
		}
	}
	u.Bullets = kept
}

// shootAt aims from the saucer's anchor at target. A target exactly on the
// anchor has no direction and is not fired at.
func (u *UFO) shootAt(target Vec) {
	dx := target.X - u.X
	dy := target.Y - u.Y
	mag := math.Sqrt(dx*dx + dy*dy)
	if mag == 0 {
		return
	}
	u.Bullets = append(u.Bullets, UFOBullet{
		X:  u.X,
		Y:  u.Y,
		VX: dx / mag * UFOBulletSpeed,
		VY: dy / mag * UFOBulletSpeed,
	})
}

// ufoRespawnFrames picks the wait before the next saucer, 20 to 40 seconds
func ufoRespawnFrames(rng *rand.Rand) float64 {
	return FPS * (ufoMinRespawnSecs + rng.Float64()*ufoRespawnSpread)
}

// updateUFO counts down to the next saucer while none is flying and a
// round is in progress, then moves the live one and clears it once dead
func updateUFO(st *State) {
	if st.UFO == nil && st.Started && !st.GameOver {
		if st.UFOTimer <= 0 {
			st.UFO = NewUFO(st.rng, st.Bounds)
			st.UFOTimer = ufoRespawnFrames(st.rng)
		} else {
			st.UFOTimer--
		}
	}

	if st.UFO != nil {
		st.UFO.Update(st.rng, Vec{X: st.Ship.X, Y: st.Ship.Y}, st.Bounds)
		if !st.UFO.Alive {
			st.clearUFO()
		}
	}
}

func (st *State) clearUFO() {
	st.UFO = nil
	st.UFOTimer = ufoRespawnFrames(st.rng)
}

// resolveUFOHits runs the three saucer interactions: ramming the ship,
// saucer shots hitting the ship and player shots hitting the saucer
func resolveUFOHits(st *State) {
	u := st.UFO
	if u == nil {
		return
	}

	if st.vulnerable() {
		c := u.Centre()
		if CheckCollision(st.Ship.X, st.Ship.Y, st.Ship.R, c.X, c.Y, u.HitRadius()) {
			explodeShip(st)
			u.Alive = false
		}
	}

	if st.vulnerable() {
		for _, s := range u.Bullets {
			if Distance(st.Ship.X, st.Ship.Y, s.X, s.Y) < st.Ship.R {
				explodeShip(st)
				break
			}
		}
	}

	if u.Alive {
		c := u.Centre()
		r := u.HitRadius()
		for i := len(st.Bullets) - 1; i >= 0; i-- {
			b := st.Bullets[i]
			if CheckCollision(b.X, b.Y, 0, c.X, c.Y, r) {
				st.Particles = append(st.Particles, SpawnParticles(st.rng, c.X, c.Y, ufoSparks, UFOColors)...)
				u.Alive = false
				st.Score += UFOKillScore
				st.sfx.PlayExplosion(audio.TierMedium)
				st.Bullets = append(st.Bullets[:i], st.Bullets[i+1:]...)
				break
			}
		}
	}

	if !u.Alive {
		st.clearUFO()
	}
}
