// Package table implements the set-associative Index Table that
// backs the delta-correlating prefetcher: decoding a PC into a set
// and tag, dispatching to per-set Delta Entries, running the
// correlation algorithm, and filtering the resulting candidates
// against the host cache's queues and contents.
package table

import (
	"fmt"
	"math/bits"

	"github.com/sarchlab/dcpt/host"
)

const addrBits = 64

// Config describes an Index Table's geometry. The zero value is not
// valid; use Builder (root package) or fill every field explicitly.
type Config struct {
	NumSets      int
	Ways         int
	BlockSize    uint64
	WindowLength int
	DeltaBits    uint
	SearchLength int
}

// Table is a set-associative, LRU-replaced index of Delta Entries
// keyed by PC, plus the geometry needed to decode an address into a
// set and tag and to test a candidate against the host's cache lines
// and queues.
type Table struct {
	host host.Host
	sets []*Set

	byteBits, setBits, tagBits uint
	byteMask, setMask, tagMask uint64
	blockMask                  uint64
	windowLength, searchLength int
	deltaBits                  uint
}

// NewTable constructs a Table with the given geometry, attached to
// h. S (NumSets) and W (Ways) must be positive; every other field is
// accepted verbatim and treated as an opaque bit pattern rather than
// validated.
func NewTable(cfg Config, h host.Host) (*Table, error) {
	if cfg.NumSets <= 0 {
		return nil, fmt.Errorf("%w: number of sets must be positive, got %d",
			ErrInvalidConfiguration, cfg.NumSets)
	}

	if cfg.Ways <= 0 {
		return nil, fmt.Errorf("%w: ways must be positive, got %d",
			ErrInvalidConfiguration, cfg.Ways)
	}

	t := &Table{
		host:         h,
		windowLength: cfg.WindowLength,
		searchLength: cfg.SearchLength,
		deltaBits:    cfg.DeltaBits,
	}
	t.decodeGeometry(cfg)

	t.sets = make([]*Set, cfg.NumSets)
	for i := range t.sets {
		t.sets[i] = NewSet(cfg.Ways)
	}

	return t, nil
}

func (t *Table) decodeGeometry(cfg Config) {
	t.byteBits = log2(cfg.BlockSize)
	t.setBits = log2(uint64(cfg.NumSets))
	t.tagBits = addrBits - t.setBits - t.byteBits

	t.byteMask = saturatingMaskLow(t.byteBits)
	t.setMask = saturatingMask(t.setBits, t.byteBits)
	t.tagMask = saturatingMask(t.tagBits, t.byteBits+t.setBits)
	t.blockMask = ^t.byteMask
}

// log2 returns the base-2 logarithm of x, assuming x is an exact
// power of two.
func log2(x uint64) uint {
	return uint(bits.TrailingZeros64(x))
}

func saturatingMaskLow(width uint) uint64 {
	if width >= addrBits {
		return ^uint64(0)
	}

	return (uint64(1) << width) - 1
}

func saturatingMask(width, shift uint) uint64 {
	if width >= addrBits {
		return ^uint64(0)
	}

	return saturatingMaskLow(width) << shift
}

// Result reports what one DCPT call did: whether it created a fresh
// Delta Entry, the raw candidates the correlation search produced,
// and the subset of those that survived prefetchFilter and were
// actually issued.
type Result struct {
	EntryCreated bool
	Candidates   []uint64
	Issued       []uint64
}

// DCPT trains the Delta Entry for pc on the miss address addr, and
// reports the candidates the correlation algorithm found, before and
// after filtering against the host's cache and queues.
func (t *Table) DCPT(pc, addr uint64) Result {
	setNo := int((t.setMask & pc) >> t.byteBits)
	tag := pc

	set := t.sets[setNo]
	entry := set.Find(tag)

	if entry == nil {
		set.Insert(NewEntry(tag, addr, t.deltaBits, t.windowLength))
		return Result{EntryCreated: true}
	}

	if entry.LastAddr == addr {
		return Result{}
	}

	entry.Insert(addr)
	set.Access(entry)

	candidates := entry.GetPrefetchAddresses(t.searchLength, t.blockMask)
	issued := t.prefetchFilter(candidates)

	if len(issued) > 0 {
		entry.LastPrefetch = issued[len(issued)-1]
	}

	return Result{Candidates: candidates, Issued: issued}
}

// prefetchFilter removes every candidate that shares a cache block
// with a valid line already in the host's cache, or with an active
// entry in any of the host's queues or MSHRs. The relative order of
// surviving candidates is preserved.
func (t *Table) prefetchFilter(candidates []uint64) []uint64 {
	if len(candidates) == 0 {
		return candidates
	}

	kept := make([]uint64, 0, len(candidates))
	for _, c := range candidates {
		if !t.inQueuesOrCache(c) {
			kept = append(kept, c)
		}
	}

	return kept
}

func (t *Table) inQueuesOrCache(addr uint64) bool {
	return t.inPackets(t.host.ReadQueue(), addr) ||
		t.inPackets(t.host.WriteQueue(), addr) ||
		t.inPackets(t.host.PrefetchQueue(), addr) ||
		t.inPackets(t.host.MSHR(), addr) ||
		t.inCache(addr)
}

func (t *Table) inPackets(packets []host.Packet, addr uint64) bool {
	for _, p := range packets {
		if p.Address != 0 && (p.VAddress&t.blockMask) == (addr&t.blockMask) {
			return true
		}
	}

	return false
}

func (t *Table) inCache(addr uint64) bool {
	setNo := t.host.GetSet(addr)
	way := t.host.GetWay(addr, setNo)

	if way >= t.host.NumWays() {
		return false
	}

	block := t.host.Block(setNo, way)

	return block.Valid && (block.VAddress&t.blockMask) == (addr&t.blockMask)
}

// NumSets reports the table's set count, for tests and monitoring.
func (t *Table) NumSets() int { return len(t.sets) }

// SetAt returns the set at index i, for tests and monitoring.
func (t *Table) SetAt(i int) *Set { return t.sets[i] }
