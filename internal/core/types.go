package core

// MaxAge is the age at which a live cell stops getting older.
const MaxAge uint8 = 127

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.W * s.H }

// Stats describes a single committed generation. Values returned together
// always refer to the same generation.
type Stats struct {
	Iteration  uint64
	Population int
	Checksum   uint64
}

// Sim defines the contract renderers rely on: an engine that advances one
// generation per Step and lets readers copy its committed generation.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Stats() Stats
	Snapshot(dst []uint8) (Stats, error)
}
