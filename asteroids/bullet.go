package asteroids

import "math"

const (
	BulletSpeed = 500.0 / FPS
	BulletLife  = 90
	MaxBullets  = 4
)

// Bullet is a player shot. Unlike everything else it does not wrap.
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Life   int
}

// fireBullet launches a shot from the nose along the heading. It does
// nothing while MaxBullets are live or the ship cannot act.
func fireBullet(st *State) bool {
	if !st.Started || st.GameOver || st.Exploding || len(st.Bullets) >= MaxBullets {
		return false
	}
	nose := st.Ship.Nose()
	st.Bullets = append(st.Bullets, Bullet{
		X:    nose.X,
		Y:    nose.Y,
		VX:   BulletSpeed * math.Cos(st.Ship.A),
		VY:   -BulletSpeed * math.Sin(st.Ship.A),
		Life: BulletLife,
	})
	st.sfx.FireLaser()
	return true
}

func moveBullets(st *State) {
	for i := range st.Bullets {
		b := &st.Bullets[i]
		b.X += b.VX
		b.Y += b.VY
		b.Life--
	}
}

// cullBullets drops expired shots and any that left the field
func cullBullets(st *State) {
	kept := st.Bullets[:0]
	for _, b := range st.Bullets {
		if b.Life > 0 && b.X >= 0 && b.X <= st.Bounds.W && b.Y >= 0 && b.Y <= st.Bounds.H {
			kept = append(kept, b)
		}
	}
	st.Bullets = kept
}
