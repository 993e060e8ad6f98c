package life

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"lifeterrain/internal/core"
	pcore "lifeterrain/pkg/core"
)

var (
	// ErrInvalidConfig is returned when a Terrain cannot be built from the
	// supplied size, density or random source.
	ErrInvalidConfig = errors.New("life: invalid configuration")
	// ErrDimensionMismatch is returned when a snapshot destination does not
	// match the grid size.
	ErrDimensionMismatch = errors.New("life: snapshot dimension mismatch")
)

var (
	_ core.Sim               = (*Terrain)(nil)
	_ core.ParameterProvider = (*Terrain)(nil)
)

// Terrain implements Conway's Game of Life on a square torus, tracking how
// many consecutive generations each cell has been alive.
//
// A single goroutine may call Step while any number of goroutines read the
// committed generation through Snapshot and the counter accessors. Step
// computes the next generation into the inactive buffer without holding the
// lock and only takes it to swap buffers and publish the counters.
type Terrain struct {
	n       int
	density float64

	mu     sync.RWMutex
	grids  [2]*core.AgeGrid
	active int        // written under mu, only by Step
	stats  core.Stats // guarded by mu

	digest *xxhash.Digest // owned by Step
	packed []byte         // one row of liveness bits, owned by Step
}

// New seeds a size*size Terrain: each cell starts alive with probability
// density, drawing one value from src per cell in row-major order. src is
// not retained.
func New(size int, density float64, src pcore.Source) (*Terrain, error) {
	if err := validate(size, density); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	t := &Terrain{
		n:       size,
		density: density,
		grids:   [2]*core.AgeGrid{core.NewAgeGrid(size), core.NewAgeGrid(size)},
		digest:  xxhash.New(),
		packed:  make([]byte, (size+7)/8),
	}
	pcore.FillAges(src, t.grids[0].Cells(), density)
	t.recount()
	return t, nil
}

// NewWithConfig validates cfg and seeds a Terrain from cfg.Seed.
func NewWithConfig(cfg Config) (*Terrain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg.Size, cfg.Density, pcore.NewRNG(cfg.Seed))
}

// recount rebuilds population and checksum from the committed buffer with a
// full scan. Only used before the Terrain is shared.
func (t *Terrain) recount() {
	g := t.grids[t.active]
	t.digest.Reset()
	for r := 0; r < t.n; r++ {
		t.digest.Write(packRow(g.Row(r), t.packed))
	}
	t.stats.Population = g.Alive()
	t.stats.Checksum = t.digest.Sum64()
}

// packRow stores one bit per cell of row in dst, set when the cell is alive.
func packRow(row []uint8, dst []byte) []byte {
	clear(dst)
	for c, age := range row {
		if age != 0 {
			dst[c>>3] |= 1 << (c & 7)
		}
	}
	return dst
}

// Name returns the simulation identifier.
func (t *Terrain) Name() string { return "life" }

// Size returns the grid dimensions.
func (t *Terrain) Size() core.Size { return core.Size{W: t.n, H: t.n} }

// Step advances the terrain by one generation.
func (t *Terrain) Step() {
	n := t.n
	cur := t.grids[t.active]
	nxt := t.grids[1-t.active]
	src := cur.Cells()

	t.digest.Reset()
	population := 0
	for r := 0; r < n; r++ {
		row := nxt.Row(r)
		base := r * n
		for c := 0; c < n; c++ {
			age := nextAge(src[base+c], cur.NeighborCount(r, c))
			row[c] = age
			if age != 0 {
				population++
			}
		}
		t.digest.Write(packRow(row, t.packed))
	}
	sum := t.digest.Sum64()

	t.mu.Lock()
	t.active = 1 - t.active
	t.stats = core.Stats{
		Iteration:  t.stats.Iteration + 1,
		Population: population,
		Checksum:   sum,
	}
	t.mu.Unlock()
}

// Stats returns the counters of the committed generation as one group.
func (t *Terrain) Stats() core.Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stats
}

// Iteration returns the number of completed Step calls.
func (t *Terrain) Iteration() uint64 { return t.Stats().Iteration }

// Population returns the number of live cells in the committed generation.
func (t *Terrain) Population() int { return t.Stats().Population }

// Checksum returns the xxHash64 of the committed generation's live/dead
// pattern, packed one bit per cell row by row. Ages are left out so a still
// life or oscillator repeats its checksum immediately instead of only once
// every cell has reached core.MaxAge. Equal grids always produce equal
// checksums.
func (t *Terrain) Checksum() uint64 { return t.Stats().Checksum }

// Density returns the live fraction of the committed generation.
func (t *Terrain) Density() float64 {
	return float64(t.Population()) / float64(t.n*t.n)
}

// Snapshot copies the committed generation into dst (row-major, size*size
// bytes) and returns the counters describing that same generation.
func (t *Terrain) Snapshot(dst []uint8) (core.Stats, error) {
	if len(dst) != t.n*t.n {
		return core.Stats{}, fmt.Errorf("%w: got %d cells, want %d", ErrDimensionMismatch, len(dst), t.n*t.n)
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	copy(dst, t.grids[t.active].Cells())
	return t.stats, nil
}

// SnapshotGrid is Snapshot for an AgeGrid destination.
func (t *Terrain) SnapshotGrid(dst *core.AgeGrid) (core.Stats, error) {
	if dst == nil || dst.N != t.n {
		got := 0
		if dst != nil {
			got = dst.N
		}
		return core.Stats{}, fmt.Errorf("%w: got %dx%d grid, want %dx%d", ErrDimensionMismatch, got, got, t.n, t.n)
	}
	return t.Snapshot(dst.Cells())
}

// Parameters describes the terrain for the HUD.
func (t *Terrain) Parameters() core.ParameterSnapshot {
	s := t.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("size", "Size", t.n),
				floatParam("density", "Seed density", t.density),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.Iteration, 10)},
				intParam("population", "Population", s.Population),
				floatParam("live", "Live fraction", float64(s.Population)/float64(t.n*t.n)),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}
