// Package tracing provides observers that watch the decisions a
// delta-correlating prefetcher makes, without feeding anything back
// into the predictor's own state. A Tracer only ever learns about a
// Decision after the predictor has already committed to it.
package tracing

// Decision records everything a Tracer might want to know about one
// Table.DCPT call.
type Decision struct {
	AdapterID string
	PC        uint64
	Addr      uint64

	// EntryCreated is true when this access was the first sighting of
	// PC: no deltas exist yet and no candidates can have been
	// produced.
	EntryCreated bool

	// Candidates is what the correlation algorithm produced before
	// prefetchFilter ran.
	Candidates []uint64

	// Issued is the subset of Candidates that survived filtering and
	// were actually handed to host.PrefetchLine.
	Issued []uint64
}

// Filtered reports the candidates prefetchFilter removed.
func (d Decision) Filtered() []uint64 {
	if len(d.Candidates) == len(d.Issued) {
		return nil
	}

	issued := make(map[uint64]bool, len(d.Issued))
	for _, c := range d.Issued {
		issued[c] = true
	}

	var dropped []uint64
	for _, c := range d.Candidates {
		if !issued[c] {
			dropped = append(dropped, c)
		}
	}

	return dropped
}

// A Tracer observes prefetch decisions as an Adapter makes them.
type Tracer interface {
	Trace(d Decision)
}

// NopTracer discards every decision. It is the Adapter default.
type NopTracer struct{}

// Trace implements Tracer.
func (NopTracer) Trace(Decision) {}
