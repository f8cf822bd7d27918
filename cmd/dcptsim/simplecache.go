package main

import "github.com/sarchlab/dcpt/host"

// set is a single set of simpleCache's tag array: a fixed number of
// blocks plus an explicit recency order.
type set struct {
	blocks         []host.Block
	prefetchedWays []bool // true if blocks[way] was installed by PrefetchLine and not yet referenced
	lruQueue       []int  // way indices, oldest first
}

// simpleCache is a minimal, in-memory host.Host: just enough tag
// array, queues and MSHR bookkeeping to drive an Adapter end to end
// outside of a real simulator. It is a test harness for the
// predictor, not a cache implementation anyone should deploy.
type simpleCache struct {
	numSets   int
	numWays   int
	blockSize uint64

	sets []set

	rq, wq, pq, mshr []host.Packet

	hits, misses, prefetchesInstalled, prefetchesUsed int
}

// newSimpleCache creates a simpleCache with numSets sets of numWays
// ways each, addressed in blockSize-byte lines.
func newSimpleCache(numSets, numWays int, blockSize uint64) *simpleCache {
	c := &simpleCache{
		numSets:   numSets,
		numWays:   numWays,
		blockSize: blockSize,
		sets:      make([]set, numSets),
	}

	for i := range c.sets {
		c.sets[i] = set{
			blocks:         make([]host.Block, numWays),
			prefetchedWays: make([]bool, numWays),
			lruQueue:       []int{},
		}
	}

	return c
}

func (c *simpleCache) BlockSize() uint64 { return c.blockSize }
func (c *simpleCache) NumWays() int      { return c.numWays }

func (c *simpleCache) GetSet(addr uint64) int {
	return int((addr / c.blockSize) % uint64(c.numSets))
}

func (c *simpleCache) blockMask() uint64 { return ^(c.blockSize - 1) }

func (c *simpleCache) GetWay(addr uint64, setIndex int) int {
	s := &c.sets[setIndex]

	for way, b := range s.blocks {
		if b.Valid && (b.VAddress&c.blockMask()) == (addr&c.blockMask()) {
			return way
		}
	}

	return c.numWays
}

func (c *simpleCache) Block(setIndex, wayIndex int) host.Block {
	return c.sets[setIndex].blocks[wayIndex]
}

func (c *simpleCache) ReadQueue() []host.Packet     { return c.rq }
func (c *simpleCache) WriteQueue() []host.Packet    { return c.wq }
func (c *simpleCache) PrefetchQueue() []host.Packet { return c.pq }
func (c *simpleCache) MSHR() []host.Packet          { return c.mshr }

// PrefetchLine installs addr's block immediately if it is not already
// resident. A real host would queue the request and fill it
// asynchronously; this harness has no timing model to respect.
func (c *simpleCache) PrefetchLine(addr uint64, fillThisLevel bool, _ uint32) {
	if !fillThisLevel {
		return
	}

	setIndex := c.GetSet(addr)
	if c.GetWay(addr, setIndex) < c.numWays {
		return
	}

	way := c.install(setIndex, addr)
	c.sets[setIndex].prefetchedWays[way] = true
	c.prefetchesInstalled++
}

// Access simulates a demand access, reporting whether it hit, and
// installing the block on a miss. A hit on a block this cache
// installed via PrefetchLine and that no demand access has referenced
// yet counts toward prefetchesUsed: the prefetch covered a miss that
// would otherwise have happened.
func (c *simpleCache) Access(addr uint64) (hit bool) {
	setIndex := c.GetSet(addr)
	way := c.GetWay(addr, setIndex)

	if way < c.numWays {
		c.hits++
		c.touch(setIndex, way)

		s := &c.sets[setIndex]
		if s.prefetchedWays[way] {
			c.prefetchesUsed++
			s.prefetchedWays[way] = false
		}

		return true
	}

	c.misses++
	way = c.install(setIndex, addr)
	c.sets[setIndex].prefetchedWays[way] = false

	return false
}

func (c *simpleCache) install(setIndex int, addr uint64) (way int) {
	s := &c.sets[setIndex]

	way = c.victimWay(s)
	s.blocks[way] = host.Block{Valid: true, VAddress: addr}
	c.touch(setIndex, way)

	return way
}

func (c *simpleCache) victimWay(s *set) int {
	for way, b := range s.blocks {
		if !b.Valid {
			return way
		}
	}

	return s.lruQueue[0]
}

func (c *simpleCache) touch(setIndex, way int) {
	s := &c.sets[setIndex]

	for i, w := range s.lruQueue {
		if w == way {
			s.lruQueue = append(s.lruQueue[:i], s.lruQueue[i+1:]...)
			break
		}
	}

	s.lruQueue = append(s.lruQueue, way)
}
