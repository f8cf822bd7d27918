package table

// Entry is a per-PC delta-history record. It tracks the address last
// seen for its PC, the address last handed to the host as a
// prefetch, and a bounded FIFO window of deltas between successive
// miss addresses.
type Entry struct {
	Tag          uint64
	LastAddr     uint64
	LastPrefetch uint64
	Valid        bool

	deltaBits uint
	deltaMask uint64
	window    int
	deltas    []int64
}

// NewEntry creates an entry that has just observed its first miss
// address for tag. No delta is recorded on first sighting; the delta
// sequence starts on the entry's next Insert.
func NewEntry(tag, addr uint64, deltaBits uint, window int) *Entry {
	e := &Entry{window: window}
	e.reset(tag, addr, deltaBits, window)

	return e
}

// reset re-initializes e in place, as if freshly constructed. NewEntry
// uses it to fill in a new Entry; on LRU eviction an Index Set reuses
// the evicted entry's list node for the new Entry, not the Entry
// itself.
func (e *Entry) reset(tag, addr uint64, deltaBits uint, window int) {
	e.Tag = tag
	e.LastAddr = addr
	e.LastPrefetch = 0
	e.Valid = true
	e.deltaBits = deltaBits
	e.deltaMask = deltaMask(deltaBits)
	e.window = window
	e.deltas = e.deltas[:0]
}

func deltaMask(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << bits) - 1
}

// Insert records a new miss address, updating the delta window.
//
// The overflow check compares the delta's raw two's-complement bit
// pattern, reinterpreted as unsigned, against deltaMask — not the
// delta's mathematical absolute value. Most negative deltas therefore
// land on the zero sentinel; this is intentional, not a bug to work
// around.
func (e *Entry) Insert(addr uint64) {
	delta := int64(addr - e.LastAddr)
	unsigned := uint64(delta)

	switch {
	case unsigned > e.deltaMask:
		e.pushDelta(0)
	case delta != 0:
		e.pushDelta(delta)
	}

	e.LastAddr = addr
}

// pushDelta appends a delta to the window, dropping the oldest entry
// once the window is full.
func (e *Entry) pushDelta(delta int64) {
	if len(e.deltas) == e.window {
		copy(e.deltas, e.deltas[1:])
		e.deltas[len(e.deltas)-1] = delta

		return
	}

	e.deltas = append(e.deltas, delta)
}

// DeltaCount reports how many deltas are currently recorded, for
// tests and instrumentation.
func (e *Entry) DeltaCount() int {
	return len(e.deltas)
}

// GetPrefetchAddresses runs the correlation algorithm: it searches
// for an earlier occurrence of the most recent searchLen deltas (the
// pattern) inside the rest of the window, and projects the deltas
// following that occurrence forward from LastAddr to produce
// candidate prefetch addresses.
//
// The search takes the earliest (lowest-index) occurrence of the
// pattern and projects from just after it through to the end of the
// window, inclusive of the pattern's own most recent occurrence. See
// DESIGN.md ("Correlation search direction") for why this, rather
// than a "prefer the most recent match" reading, is what reproduces
// the worked stride-prefetch examples this algorithm is checked
// against.
func (e *Entry) GetPrefetchAddresses(searchLen int, blockMask uint64) []uint64 {
	n := len(e.deltas)
	if n < 2*searchLen {
		return nil
	}

	pattern := e.deltas[n-searchLen:]
	matchEnd := e.findEarliestMatch(pattern, n, searchLen)
	if matchEnd < 0 {
		return nil
	}

	return e.project(matchEnd, n, blockMask)
}

// findEarliestMatch returns the index just past the earliest
// occurrence of pattern within deltas[0:n-searchLen], or -1 if no
// occurrence exists.
func (e *Entry) findEarliestMatch(pattern []int64, n, searchLen int) int {
	prefixLen := n - searchLen
	for k := 0; k+searchLen <= prefixLen; k++ {
		if equalDeltas(e.deltas[k:k+searchLen], pattern) {
			return k + searchLen
		}
	}

	return -1
}

func equalDeltas(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// project accumulates deltas[from:n] onto LastAddr, deduplicating by
// cache block and clearing the candidate list whenever the running
// address matches LastPrefetch (re-issue suppression).
func (e *Entry) project(from, n int, blockMask uint64) []uint64 {
	var candidates []uint64

	pfAddr := e.LastAddr
	for idx := from; idx < n; idx++ {
		pfAddr += uint64(e.deltas[idx])

		if pfAddr == e.LastPrefetch {
			candidates = candidates[:0]
			continue
		}

		if sameBlock(candidates, pfAddr, blockMask) {
			continue
		}

		candidates = append(candidates, pfAddr)
	}

	return candidates
}

func sameBlock(candidates []uint64, addr, blockMask uint64) bool {
	for _, c := range candidates {
		if (c & blockMask) == (addr & blockMask) {
			return true
		}
	}

	return false
}
