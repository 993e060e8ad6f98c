package core

// AgeGrid stores a square grid of byte-sized cell ages in row-major order.
// A zero value marks a dead cell; anything else is the number of consecutive
// generations the cell has been alive.
type AgeGrid struct {
	N    int
	data []uint8
}

// NewAgeGrid allocates an n*n grid. Non-positive sizes are clamped to 1.
func NewAgeGrid(n int) *AgeGrid {
	if n <= 0 {
		n = 1
	}
	return &AgeGrid{N: n, data: make([]uint8, n*n)}
}

// Cells exposes the backing slice.
func (g *AgeGrid) Cells() []uint8 { return g.data }

// Row returns the slice backing row r.
func (g *AgeGrid) Row(r int) []uint8 { return g.data[r*g.N : (r+1)*g.N] }

// Index returns the linear slice index for (row, col).
func (g *AgeGrid) Index(row, col int) int { return row*g.N + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *AgeGrid) Wrap(row, col int) (int, int) {
	row = (row%g.N + g.N) % g.N
	col = (col%g.N + g.N) % g.N
	return row, col
}

// NeighborCount returns the number of live cells among the eight cells
// surrounding (row, col). Edges and corners wrap to the opposite side.
func (g *AgeGrid) NeighborCount(row, col int) int {
	n := g.N
	up := (row - 1 + n) % n
	down := (row + 1) % n
	left := (col - 1 + n) % n
	right := (col + 1) % n

	above := g.data[up*n : up*n+n]
	mid := g.data[row*n : row*n+n]
	below := g.data[down*n : down*n+n]

	count := 0
	for _, c := range [8]uint8{
		above[left], above[col], above[right],
		mid[left], mid[right],
		below[left], below[col], below[right],
	} {
		if c != 0 {
			count++
		}
	}
	return count
}

// Alive counts the non-zero cells with a full scan.
func (g *AgeGrid) Alive() int {
	count := 0
	for _, c := range g.data {
		if c != 0 {
			count++
		}
	}
	return count
}

// Clear fills the grid with zeros.
func (g *AgeGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
