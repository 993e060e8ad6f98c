package life

// DefaultHistory is the number of checksums a CycleDetector remembers.
const DefaultHistory = 24

// CycleDetector remembers the most recent checksums and reports when a new
// one repeats any of them. This catches still lifes and oscillators with a
// period up to the history length. A checksum collision between distinct
// generations would be reported as a repeat; with 64-bit hashes over a short
// window that is accepted.
type CycleDetector struct {
	ring  []uint64
	head  int // oldest entry once the ring is full
	count int
	seen  map[uint64]struct{}
}

// NewCycleDetector returns a detector remembering k checksums. Non-positive
// values use DefaultHistory.
func NewCycleDetector(k int) *CycleDetector {
	if k <= 0 {
		k = DefaultHistory
	}
	return &CycleDetector{ring: make([]uint64, k), seen: make(map[uint64]struct{}, k+1)}
}

// Observe records the checksum of a newly completed generation. It returns
// true, without recording, when the checksum is already in the history.
func (d *CycleDetector) Observe(sum uint64) bool {
	if _, ok := d.seen[sum]; ok {
		return true
	}
	k := len(d.ring)
	if d.count < k {
		d.ring[(d.head+d.count)%k] = sum
		d.count++
	} else {
		delete(d.seen, d.ring[d.head])
		d.ring[d.head] = sum
		d.head = (d.head + 1) % k
	}
	d.seen[sum] = struct{}{}
	return false
}

// Len returns the number of remembered checksums.
func (d *CycleDetector) Len() int { return d.count }

// History returns the remembered checksums, oldest first.
func (d *CycleDetector) History() []uint64 {
	out := make([]uint64, d.count)
	for i := range out {
		out[i] = d.ring[(d.head+i)%len(d.ring)]
	}
	return out
}

// Reset forgets all remembered checksums.
func (d *CycleDetector) Reset() {
	d.head = 0
	d.count = 0
	clear(d.seen)
}
