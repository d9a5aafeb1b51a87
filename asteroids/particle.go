package asteroids

import (
	"math"
	"math/rand/v2"
)

const DebrisLife = 90

// Particle is a cosmetic spark
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Size   float64
	Color  string
}

// Debris is one tumbling fragment of a destroyed ship
type Debris struct {
	X, Y          float64
	VX, VY        float64
	Life, MaxLife int
	Size          float64
	Angle         float64
	RotationSpeed float64
}

// SpawnParticles emits count sparks at (x, y) with colors drawn from the
// palette. An empty palette yields white sparks.
func SpawnParticles(rng *rand.Rand, x, y float64, count int, colors []string) []Particle {
	if count <= 0 {
		return nil
	}
	out := make([]Particle, count)
	for i := range out {
		color := "white"
		if len(colors) > 0 {
			color = colors[rng.IntN(len(colors))]
		}
		out[i] = Particle{
			X:     x,
			Y:     y,
			VX:    (rng.Float64() - 0.5) * 6,
			VY:    (rng.Float64() - 0.5) * 6,
			Life:  rng.IntN(30) + 30,
			Size:  rng.Float64()*2 + 0.5,
			Color: color,
		}
	}
	return out
}

// SpawnShipDebris breaks the ship into one fragment per silhouette vertex
func SpawnShipDebris(rng *rand.Rand, ship *Ship) []Debris {
	poly := ShipPolygon(ship)
	out := make([]Debris, len(poly))
	for i, p := range poly {
		out[i] = Debris{
			X:             p.X,
			Y:             p.Y,
			VX:            (rng.Float64() - 0.5) * 8,
			VY:            (rng.Float64() - 0.5) * 8,
			Life:          DebrisLife,
			MaxLife:       DebrisLife,
			Size:          rng.Float64()*2 + 1.5,
			Angle:         rng.Float64() * math.Pi * 2,
			RotationSpeed: (rng.Float64() - 0.5) * 0.1,
		}
	}
	return out
}

// Alpha fades a fragment out over its life
func (d *Debris) Alpha() float64 {
	if d.MaxLife <= 0 {
		return 0
	}
	f := float64(d.Life) / float64(d.MaxLife)
	return f * f
}

func updateParticles(st *State) {
	kept := st.Particles[:0]
	for _, p := range st.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	st.Particles = kept
}

func updateDebris(st *State) {
	kept := st.Debris[:0]
	for _, d := range st.Debris {
		d.X += d.VX
		d.Y += d.VY
		d.Angle += d.RotationSpeed
		d.Life--
		if d.Life > 0 {
			kept = append(kept, d)
		}
	}
	st.Debris = kept
}
