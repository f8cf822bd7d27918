package table

import "github.com/sarchlab/dcpt/host"

// fakeHost is a minimal, hand-rolled host.Host used by tests that
// only need an empty cache and empty queues (the common case for the
// correlation-algorithm scenarios below). Tests that need to assert
// exactly which Host methods the Table calls, and with what
// arguments, use MockHost instead.
type fakeHost struct {
	blockSize uint64
	numWays   int

	blocks           map[int]map[int]host.Block
	rq, wq, pq, mshr []host.Packet

	prefetched []uint64
}

func newFakeHost(blockSize uint64, numWays int) *fakeHost {
	return &fakeHost{
		blockSize: blockSize,
		numWays:   numWays,
		blocks:    map[int]map[int]host.Block{},
	}
}

func (h *fakeHost) BlockSize() uint64 { return h.blockSize }
func (h *fakeHost) NumWays() int      { return h.numWays }

func (h *fakeHost) GetSet(addr uint64) int { return int(addr / h.blockSize % 1024) }

func (h *fakeHost) GetWay(addr uint64, setIndex int) int {
	set := h.blocks[setIndex]
	for way, b := range set {
		if b.Valid && (b.VAddress/h.blockSize) == (addr/h.blockSize) {
			return way
		}
	}

	return h.numWays
}

func (h *fakeHost) Block(setIndex, wayIndex int) host.Block {
	return h.blocks[setIndex][wayIndex]
}

func (h *fakeHost) putValidBlock(setIndex, wayIndex int, vaddr uint64) {
	if h.blocks[setIndex] == nil {
		h.blocks[setIndex] = map[int]host.Block{}
	}

	h.blocks[setIndex][wayIndex] = host.Block{Valid: true, VAddress: vaddr}
}

func (h *fakeHost) ReadQueue() []host.Packet     { return h.rq }
func (h *fakeHost) WriteQueue() []host.Packet    { return h.wq }
func (h *fakeHost) PrefetchQueue() []host.Packet { return h.pq }
func (h *fakeHost) MSHR() []host.Packet          { return h.mshr }

func (h *fakeHost) PrefetchLine(addr uint64, _ bool, _ uint32) {
	h.prefetched = append(h.prefetched, addr)
}
