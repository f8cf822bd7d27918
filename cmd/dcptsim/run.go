package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/dcpt"
	"github.com/sarchlab/dcpt/host"
	"github.com/sarchlab/dcpt/monitoring"
	"github.com/sarchlab/dcpt/tracing"
)

// RunConfig describes one trace run, synthetic or file-based.
type RunConfig struct {
	NumSets      int
	Ways         int
	WindowLength int
	DeltaBits    uint
	SearchLength int
	BlockSize    uint64

	PCCount int
	Steps   int
	Stride  uint64

	TraceFile string // if non-empty, read (pc,addr) pairs from here instead of generating a synthetic trace

	TracerKind string // "none", "csv" or "sqlite"
	TracePath  string

	Monitor     bool
	MonitorPort int
}

// Stats summarizes one Simulate run.
type Stats struct {
	Accesses         int
	Hits             int
	Misses           int
	PrefetchesIssued int
	PrefetchesUsed   int
}

// Coverage reports the fraction of issued prefetches that were later
// referenced by a demand access before being evicted, preventing a
// miss. It is 0 when no prefetches were issued.
func (s Stats) Coverage() float64 {
	if s.PrefetchesIssued == 0 {
		return 0
	}

	return float64(s.PrefetchesUsed) / float64(s.PrefetchesIssued)
}

// traceAccess is one (pc, addr) pair read from a trace file.
type traceAccess struct {
	PC   uint64
	Addr uint64
}

// readTraceFile parses path as one "pc,addr" pair per line, both
// fields accepted in any base strconv.ParseUint recognizes (so "0x..."
// and plain decimal both work). Blank lines and lines starting with
// '#' are skipped.
func readTraceFile(path string) ([]traceAccess, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dcptsim: opening trace file: %w", err)
	}
	defer f.Close()

	var accesses []traceAccess

	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("dcptsim: trace file line %d: want \"pc,addr\", got %q", lineNo, line)
		}

		pc, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("dcptsim: trace file line %d: parsing pc: %w", lineNo, err)
		}

		addr, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("dcptsim: trace file line %d: parsing addr: %w", lineNo, err)
		}

		accesses = append(accesses, traceAccess{PC: pc, Addr: addr})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dcptsim: reading trace file: %w", err)
	}

	return accesses, nil
}

// syntheticTrace generates cfg.PCCount interleaved constant-stride
// streams of cfg.Steps misses each.
func syntheticTrace(cfg RunConfig) []traceAccess {
	bases := make([]uint64, cfg.PCCount)
	pcs := make([]uint64, cfg.PCCount)
	for i := range bases {
		bases[i] = uint64(i+1) * 0x100000
		pcs[i] = uint64(i+1) * 0x1000
	}

	accesses := make([]traceAccess, 0, cfg.PCCount*cfg.Steps)
	for step := 0; step < cfg.Steps; step++ {
		for i := 0; i < cfg.PCCount; i++ {
			accesses = append(accesses, traceAccess{
				PC:   pcs[i],
				Addr: bases[i] + uint64(step)*cfg.Stride,
			})
		}
	}

	return accesses
}

// Simulate builds a simpleCache and a dcpt.Adapter per cfg, replays
// either cfg.TraceFile's recorded accesses or a synthetic
// interleaved-stride trace through it, and returns what happened.
func Simulate(cfg RunConfig) (Stats, error) {
	cache := newSimpleCache(cfg.NumSets, cfg.Ways, cfg.BlockSize)

	builder := dcpt.MakeBuilder().
		WithNumSets(cfg.NumSets).
		WithWays(cfg.Ways).
		WithWindowLength(cfg.WindowLength).
		WithDeltaBits(cfg.DeltaBits).
		WithSearchLength(cfg.SearchLength)

	tracer, closeTracer, err := newTracer(cfg.TracerKind, cfg.TracePath)
	if err != nil {
		return Stats{}, err
	}
	if closeTracer != nil {
		defer closeTracer()
	}
	if tracer != nil {
		builder = builder.WithTracer(tracer)
	}

	adapter, err := builder.Build(cache)
	if err != nil {
		return Stats{}, fmt.Errorf("dcptsim: building adapter: %w", err)
	}

	if cfg.Monitor {
		mon := monitoring.NewMonitor().WithPortNumber(cfg.MonitorPort)
		mon.RegisterTable(adapter.ID(), adapter.Table())

		addr, err := mon.StartServer()
		if err != nil {
			return Stats{}, fmt.Errorf("dcptsim: starting monitor: %w", err)
		}

		fmt.Printf("monitoring on http://%s\n", addr)
	}

	var accesses []traceAccess
	if cfg.TraceFile != "" {
		accesses, err = readTraceFile(cfg.TraceFile)
		if err != nil {
			return Stats{}, err
		}
	} else {
		accesses = syntheticTrace(cfg)
	}

	var stats Stats
	for _, a := range accesses {
		hit := cache.Access(a.Addr)
		adapter.OnAccess(a.Addr, a.PC, hit, host.Load, 0)

		stats.Accesses++
		if hit {
			stats.Hits++
		} else {
			stats.Misses++
		}
	}

	stats.PrefetchesIssued = cache.prefetchesInstalled
	stats.PrefetchesUsed = cache.prefetchesUsed

	return stats, nil
}

func newTracer(kind, path string) (tracing.Tracer, func(), error) {
	switch kind {
	case "", "none":
		return nil, nil, nil
	case "csv":
		w := tracing.NewCSVWriter(path)
		if err := w.Init(); err != nil {
			return nil, nil, err
		}
		return w, w.Flush, nil
	case "sqlite":
		w := tracing.NewSQLiteWriter(path)
		if err := w.Init(); err != nil {
			return nil, nil, err
		}
		return w, func() { _ = w.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("dcptsim: unknown tracer kind %q", kind)
	}
}

var runFlags RunConfig

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a synthetic or file-based access trace through the prefetcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := Simulate(runFlags)
		if err != nil {
			return err
		}

		fmt.Printf("accesses=%d hits=%d misses=%d prefetches_issued=%d prefetches_used=%d coverage=%.3f\n",
			stats.Accesses, stats.Hits, stats.Misses, stats.PrefetchesIssued,
			stats.PrefetchesUsed, stats.Coverage())

		return nil
	},
}

func init() {
	f := runCmd.Flags()
	f.IntVar(&runFlags.NumSets, "num-sets", 128, "number of sets in the index table")
	f.IntVar(&runFlags.Ways, "ways", 4, "associativity of the index table")
	f.IntVar(&runFlags.WindowLength, "window-length", 19, "delta window length")
	f.UintVar(&runFlags.DeltaBits, "delta-bits", 12, "delta overflow width in bits")
	f.IntVar(&runFlags.SearchLength, "search-length", 2, "correlation pattern length")
	f.Uint64Var(&runFlags.BlockSize, "block-size", 64, "cache line size in bytes")
	f.IntVar(&runFlags.PCCount, "pc-count", 1, "number of interleaved stride streams")
	f.IntVar(&runFlags.Steps, "steps", 16, "number of accesses per stream")
	f.Uint64Var(&runFlags.Stride, "stride", 64, "stride in bytes between consecutive accesses")
	f.StringVar(&runFlags.TraceFile, "trace-file", "", "replay (pc,addr) pairs from this file instead of a synthetic trace")
	f.StringVar(&runFlags.TracerKind, "tracer", "none", "decision tracer: none, csv or sqlite")
	f.StringVar(&runFlags.TracePath, "trace-path", "", "base path/name for the tracer's output file")
	f.BoolVar(&runFlags.Monitor, "monitor", false, "start the monitoring HTTP server")
	f.IntVar(&runFlags.MonitorPort, "monitor-port", 0, "monitoring server port (0 picks one)")
}
