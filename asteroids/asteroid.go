package asteroids

import (
	"math"
	"math/rand/v2"

	"arcade/audio"
)

const (
	AsteroidRadius       = 100.0
	AsteroidSpeed        = 50.0 / 60.0 // px per frame before the wave multiplier
	DefaultAsteroidCount = 5
	SplitFloor           = 25.0 // at or below this radius an asteroid shatters
	MinSides             = 8
	MaxSides             = 16
)

// Palette for the dust left by the smallest asteroids
var DustColors = []string{"white", "#cccccc", "#88ccff"}

const dustParticles = 15

// Asteroid is a rotating jagged rock. Vertices holds one radius multiplier
// per side.
type Asteroid struct {
	X, Y          float64
	VX, VY        float64
	R             float64
	Angle         float64
	RotationSpeed float64
	Sides         int
	Vertices      []float64
}

// AsteroidPolygon places each vertex at its multiplier of the radius,
// offset by the current rotation
func AsteroidPolygon(a *Asteroid) Polygon {
	poly := make(Polygon, a.Sides)
	step := 2 * math.Pi / float64(a.Sides)
	for i := 0; i < a.Sides; i++ {
		angle := a.Angle + float64(i)*step
		m := a.R * a.Vertices[i]
		poly[i] = Vec{X: a.X + m*math.Cos(angle), Y: a.Y + m*math.Sin(angle)}
	}
	return poly
}

// SpeedMultiplier scales asteroid speed by ten percent per wave
func SpeedMultiplier(wave int) float64 {
	return 1 + 0.1*float64(wave-1)
}

// CreateAsteroidField scatters count full-size asteroids anywhere on the
// field. A count of zero or less selects DefaultAsteroidCount. Spawns may
// overlap each other or the ship.
func CreateAsteroidField(rng *rand.Rand, b Bounds, wave, count int) []Asteroid {
	if count <= 0 {
		count = DefaultAsteroidCount
	}
	speed := AsteroidSpeed * SpeedMultiplier(wave)
	field := make([]Asteroid, 0, count)
	for i := 0; i < count; i++ {
		sides := rng.IntN(MaxSides-MinSides+1) + MinSides
		vertices := make([]float64, sides)
		for v := range vertices {
			vertices[v] = 0.5 + rng.Float64()
		}
		field = append(field, Asteroid{
			X:             rng.Float64() * b.W,
			Y:             rng.Float64() * b.H,
			R:             AsteroidRadius,
			VX:            (rng.Float64() - 0.5) * speed,
			VY:            (rng.Float64() - 0.5) * speed,
			Angle:         rng.Float64() * math.Pi * 2,
			RotationSpeed: (rng.Float64() - 0.5) * 0.01,
			Sides:         sides,
			Vertices:      vertices,
		})
	}
	return field
}

// SplitAsteroid returns the two half-size children of a destroyed asteroid,
// or nothing once it is at or below SplitFloor. Children keep the parent's
// outline and rotation but get fresh velocities at twice the base speed.
func SplitAsteroid(rng *rand.Rand, a Asteroid) []Asteroid {
	if a.R <= SplitFloor {
		return nil
	}
	children := make([]Asteroid, 2)
	for i := range children {
		child := a
		child.R = a.R / 2
		child.VX = (rng.Float64() - 0.5) * 2 * AsteroidSpeed
		child.VY = (rng.Float64() - 0.5) * 2 * AsteroidSpeed
		children[i] = child
	}
	return children
}

// ScoreForRadius awards more for smaller rocks
func ScoreForRadius(r float64) int {
	switch {
	case r > 50:
		return 20
	case r > 25:
		return 50
	default:
		return 100
	}
}

// TierForRadius picks the explosion sound using the same bounds as scoring
func TierForRadius(r float64) audio.Tier {
	switch {
	case r > 50:
		return audio.TierBig
	case r > 25:
		return audio.TierMedium
	default:
		return audio.TierSmall
	}
}

func moveAsteroids(st *State) {
	for i := range st.Asteroids {
		a := &st.Asteroids[i]
		a.X += a.VX
		a.Y += a.VY
		a.Angle += a.RotationSpeed
		a.X, a.Y = WrapAround(a.X, a.Y, a.R, st.Bounds)
	}
}

// destroyAsteroid scores asteroid i, replaces it with its children or dust
// and removes it from the field
func destroyAsteroid(st *State, i int) {
	a := st.Asteroids[i]
	st.Score += ScoreForRadius(a.R)
	st.sfx.PlayExplosion(TierForRadius(a.R))

	children := SplitAsteroid(st.rng, a)
	if len(children) == 0 {
		st.Particles = append(st.Particles, SpawnParticles(st.rng, a.X, a.Y, dustParticles, DustColors)...)
	}
	st.Asteroids = append(st.Asteroids[:i], st.Asteroids[i+1:]...)
	st.Asteroids = append(st.Asteroids, children...)
	st.destroyed++
}

// resolveBulletHits checks every bullet against every asteroid outline.
// Both scans run backwards so removal never skips an element; a bullet
// stops at the first asteroid it hits.
func resolveBulletHits(st *State) {
	for i := len(st.Bullets) - 1; i >= 0; i-- {
		b := st.Bullets[i]
		for j := len(st.Asteroids) - 1; j >= 0; j-- {
			if PointInPolygon(Vec{X: b.X, Y: b.Y}, AsteroidPolygon(&st.Asteroids[j])) {
				destroyAsteroid(st, j)
				st.Bullets = append(st.Bullets[:i], st.Bullets[i+1:]...)
				break
			}
		}
	}
}
