package asteroids

const (
	HyperspaceCooldown = 180
	hyperspaceAttempts = 100
)

// StartRound begins play: a fresh field, the heartbeat at its slowest pace
// and a short invincibility window so the ship is not killed on spawn
func StartRound(st *State) {
	if st.Started {
		return
	}
	st.Started = true
	st.Asteroids = CreateAsteroidField(st.rng, st.Bounds, st.Wave, DefaultAsteroidCount)
	st.InitialCount = len(st.Asteroids)
	st.beat.Reset()
	st.grantInvincibility()
	st.UFOTimer = ufoRespawnFrames(st.rng)
}

// Hyperspace jumps the ship to a random spot at least two radii from every
// asteroid centre. After hyperspaceAttempts misses the ship stays put, but
// the sound and the cooldown are spent either way.
func Hyperspace(st *State) bool {
	if !st.Started || st.GameOver || st.Exploding || st.HyperspaceCooldown > 0 {
		return false
	}
	st.sfx.PlayHyperspace()
	for attempt := 0; attempt < hyperspaceAttempts; attempt++ {
		x := st.rng.Float64() * st.Bounds.W
		y := st.rng.Float64() * st.Bounds.H
		if safeLanding(st, x, y) {
			st.Ship.X, st.Ship.Y = x, y
			break
		}
	}
	st.HyperspaceCooldown = HyperspaceCooldown
	return true
}

func safeLanding(st *State, x, y float64) bool {
	for _, a := range st.Asteroids {
		if Distance(x, y, a.X, a.Y) < a.R*2 {
			return false
		}
	}
	return true
}

// Fire launches a bullet if the cap and the ship's state allow it
func Fire(st *State) bool {
	return fireBullet(st)
}

// advanceWave regenerates a bigger, faster field once the current one is
// cleared
func advanceWave(st *State) {
	st.Wave++
	st.Asteroids = CreateAsteroidField(st.rng, st.Bounds, st.Wave, DefaultAsteroidCount+st.Wave)
	st.InitialCount = len(st.Asteroids)
	st.beat.Reset()
	st.grantInvincibility()
}

// Step advances the simulation by one frame. Cosmetic particles keep
// fading after game over; everything else is frozen.
func Step(st *State, in Input) {
	if !st.Started {
		return
	}
	st.destroyed = 0

	updateParticles(st)
	updateDebris(st)
	if st.GameOver {
		return
	}

	if st.HyperspaceCooldown > 0 {
		st.HyperspaceCooldown--
	}

	updateShip(st, in)
	if st.GameOver {
		return
	}

	moveAsteroids(st)
	moveBullets(st)
	resolveBulletHits(st)
	cullBullets(st)

	updateUFO(st)
	resolveUFOHits(st)

	switch {
	case len(st.Asteroids) == 0:
		advanceWave(st)
	case st.destroyed > 0:
		st.beat.Retune(len(st.Asteroids), st.InitialCount)
	}
}

// updateShip runs the ship state machine for one frame:
// alive -> exploding -> (game over | invincible) -> alive
func updateShip(st *State, in Input) {
	if st.vulnerable() && shipHitByAsteroid(st) {
		explodeShip(st)
		return
	}
	if st.Exploding {
		countdownExplosion(st)
		return
	}
	countdownInvincibility(st)
	steerShip(st, in)
	moveShip(&st.Ship, st.Bounds)
}
