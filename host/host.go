// Package host declares the interface that a cache simulator must
// implement to host the delta-correlating prefetcher. Everything in
// this package is an external collaborator: the cache's tag array,
// data array, MSHRs and queues are the host's responsibility, and
// this package only names the surface the predictor reads.
package host

// AccessType classifies the memory access that triggered a cache
// lookup. Prefetch is the sentinel used to recognize and ignore
// accesses that the predictor itself (or another prefetcher) caused,
// so that prefetch traffic never trains the predictor.
type AccessType int

// The access-type values a host may report for a cache access.
const (
	Load AccessType = iota
	Store
	Translation
	Prefetch
)

func (t AccessType) String() string {
	switch t {
	case Load:
		return "load"
	case Store:
		return "store"
	case Translation:
		return "translation"
	case Prefetch:
		return "prefetch"
	default:
		return "unknown"
	}
}

// Block is a single cache line's tag-array record.
type Block struct {
	Valid    bool
	VAddress uint64
}

// Packet is an entry in a queue (read/write/prefetch) or an MSHR.
// Address is zero for an inactive slot; a zero Address must not be
// treated as a real in-flight address.
type Packet struct {
	Address  uint64
	VAddress uint64
}

// Host is the surface a cache simulator exposes to the predictor.
// The predictor never mutates any cache state directly; it only
// reads tags, queues and MSHRs, and submits prefetch requests through
// PrefetchLine. A Host implementation should use a pointer receiver:
// the predictor's Registry (see the root package) keys its table by
// the Host interface value, which must stay comparable and stable
// for as long as the predictor is attached.
type Host interface {
	// BlockSize returns the cache's line size in bytes. Must be a
	// positive power of two.
	BlockSize() uint64

	// NumWays returns the cache's associativity.
	NumWays() int

	// GetSet maps an address to its cache-set index.
	GetSet(addr uint64) int

	// GetWay returns the way addr hits in within setIndex, or a value
	// >= NumWays() on a miss.
	GetWay(addr uint64, setIndex int) int

	// Block returns the tag-array record at (setIndex, wayIndex).
	Block(setIndex, wayIndex int) Block

	// ReadQueue, WriteQueue, PrefetchQueue and MSHR enumerate the
	// host's in-flight packets. Implementations may return a live
	// slice; the predictor only reads it.
	ReadQueue() []Packet
	WriteQueue() []Packet
	PrefetchQueue() []Packet
	MSHR() []Packet

	// PrefetchLine submits a prefetch request. Fire-and-forget from
	// the predictor's perspective: the host decides independently
	// whether and when to actually fetch the line.
	PrefetchLine(addr uint64, fillThisLevel bool, metadata uint32)
}
