package table

import (
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	blockSize64 = 64
	blockMask64 = ^uint64(blockSize64 - 1)
	deltaBits12 = 12
	windowLen19 = 19
)

var _ = ginkgo.Describe("Entry", func() {
	var e *Entry

	ginkgo.BeforeEach(func() {
		e = NewEntry(0x1000, 0x4000, deltaBits12, windowLen19)
	})

	ginkgo.It("starts with no deltas and the first observed address", func() {
		Expect(e.DeltaCount()).To(Equal(0))
		Expect(e.LastAddr).To(Equal(uint64(0x4000)))
		Expect(e.Valid).To(BeTrue())
	})

	ginkgo.It("records a delta between successive addresses", func() {
		e.Insert(0x4040)
		Expect(e.DeltaCount()).To(Equal(1))
		Expect(e.LastAddr).To(Equal(uint64(0x4040)))
	})

	ginkgo.It("does not record a delta for a duplicate address", func() {
		e.Insert(0x4000)
		Expect(e.DeltaCount()).To(Equal(0))
		Expect(e.LastAddr).To(Equal(uint64(0x4000)))
	})

	ginkgo.It("records the zero sentinel when a delta overflows delta_bits", func() {
		e = NewEntry(0x1000, 0x1000, deltaBits12, windowLen19)
		e.Insert(0x1010) // delta=0x10, fits in 12 bits
		e.Insert(0x1_000_000)

		Expect(e.DeltaCount()).To(Equal(2))
	})

	ginkgo.It("drops the oldest delta once the window is full", func() {
		e = NewEntry(0x1000, 0, deltaBits12, 3)
		addr := uint64(0)
		for i := 1; i <= 5; i++ {
			addr += 16
			e.Insert(addr)
		}

		Expect(e.DeltaCount()).To(Equal(3))
	})

	ginkgo.Context("get_prefetch_addresses", func() {
		ginkgo.It("returns empty when fewer than 2*i deltas are recorded", func() {
			e.Insert(0x4040)
			Expect(e.GetPrefetchAddresses(2, blockMask64)).To(BeEmpty())
		})

		ginkgo.It("projects a constant stride two steps past the matched pattern", func() {
			addrs := []uint64{0x4000, 0x4040, 0x4080, 0x40C0, 0x4100, 0x4140}
			e = NewEntry(0x1000, addrs[0], deltaBits12, windowLen19)

			var candidates []uint64
			for _, a := range addrs[1:] {
				e.Insert(a)
				candidates = e.GetPrefetchAddresses(2, blockMask64)
				if len(candidates) > 0 {
					e.LastPrefetch = candidates[len(candidates)-1]
				}
			}

			Expect(candidates).To(Equal([]uint64{0x41C0, 0x4200}))
			Expect(e.LastPrefetch).To(Equal(uint64(0x4200)))
		})

		ginkgo.It("suppresses re-issuing a previously prefetched tail", func() {
			e = NewEntry(0x1000, 0x4000, deltaBits12, windowLen19)
			e.Insert(0x4040)
			e.Insert(0x4080)
			e.Insert(0x40C0)
			e.Insert(0x4100)

			first := e.GetPrefetchAddresses(2, blockMask64)
			Expect(first).To(Equal([]uint64{0x4140, 0x4180}))
			e.LastPrefetch = first[len(first)-1]

			e.Insert(0x4140)
			second := e.GetPrefetchAddresses(2, blockMask64)
			Expect(second).To(Equal([]uint64{0x41C0, 0x4200}))
		})

		ginkgo.It("keeps at most one candidate per cache block", func() {
			e = NewEntry(0x1000, 0, deltaBits12, windowLen19)
			e.Insert(32)
			e.Insert(64)
			e.Insert(96)
			e.Insert(128)

			candidates := e.GetPrefetchAddresses(2, blockMask64)
			blocks := map[uint64]bool{}
			for _, c := range candidates {
				blk := c & blockMask64
				Expect(blocks).NotTo(HaveKey(blk))
				blocks[blk] = true
			}
		})
	})
})
