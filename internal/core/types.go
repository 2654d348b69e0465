package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Mode is the session's editing state.
type Mode int

const (
	// ModeDrawing pauses the simulation and lets the pointer paint cells.
	ModeDrawing Mode = iota
	// ModePlaying advances the simulation on every timer threshold.
	ModePlaying
)

func (m Mode) String() string {
	if m == ModePlaying {
		return "playing"
	}
	return "drawing"
}
