package asteroids

// Key codes follow the browser KeyboardEvent.code names so remote clients
// can forward events untouched
const (
	KeyLeft       = "ArrowLeft"
	KeyRight      = "ArrowRight"
	KeyThrust     = "ArrowUp"
	KeyFire       = "Space"
	KeyHyperLeft  = "ShiftLeft"
	KeyHyperRight = "ShiftRight"
	KeyRestart    = "KeyR"
)

// Input is the held-key state sampled once per frame
type Input struct {
	Left   bool
	Right  bool
	Thrust bool
}

func inputFrom(keys map[string]bool) Input {
	return Input{
		Left:   keys[KeyLeft],
		Right:  keys[KeyRight],
		Thrust: keys[KeyThrust],
	}
}

func isHyperspaceKey(code string) bool {
	return code == KeyHyperLeft || code == KeyHyperRight
}
