package dcpt

import (
	"github.com/rs/xid"

	"github.com/sarchlab/dcpt/host"
	"github.com/sarchlab/dcpt/internal/table"
	"github.com/sarchlab/dcpt/tracing"
)

// Adapter is the Host Adapter of the predictor: the set of lifecycle
// hooks a host cache calls into. Its zero value is ready to use and
// applies the predictor's default geometry (S=128, W=4, n=19,
// delta_bits=12, i=2) the first time Initialize runs; use Builder
// instead to customize the geometry or attach a tracing.Tracer.
type Adapter struct {
	id       xid.ID
	cfg      table.Config
	tracer   tracing.Tracer
	registry *Registry

	host host.Host
}

// Table returns the Index Table backing this Adapter, looked up
// through its Registry by host identity, for monitoring and tests. It
// is nil before Initialize and after Teardown.
func (a *Adapter) Table() *table.Table {
	if a.host == nil {
		return nil
	}

	t, err := a.registry.Table(a.host)
	if err != nil {
		return nil
	}

	return t
}

// ID identifies this Adapter instance, for use as a label in
// monitoring and as a trace file/run name in tracing. It is minted
// lazily on first Initialize so a never-initialized zero-value
// Adapter does not consume an id.
func (a *Adapter) ID() string {
	return a.id.String()
}

// Initialize attaches the Adapter to h, constructing its Index Table
// with the geometry configured by Builder (or the default geometry,
// if Adapter was not built through one). It is an error to call
// Initialize twice without an intervening Teardown.
func (a *Adapter) Initialize(h host.Host) error {
	if a.host != nil {
		return ErrAlreadyInitialized
	}

	if (a.id == xid.ID{}) {
		a.id = xid.New()
	}

	if a.tracer == nil {
		a.tracer = tracing.NopTracer{}
	}

	if a.registry == nil {
		a.registry = NewRegistry()
	}

	cfg := a.cfg
	if cfg.NumSets == 0 {
		cfg = defaultConfig()
	}
	cfg.BlockSize = h.BlockSize()

	t, err := table.NewTable(cfg, h)
	if err != nil {
		return err
	}

	a.registry.Register(h, t)
	a.host = h

	return nil
}

// OnAccess is the on_access hook: on a demand miss that did not
// itself originate from a prefetch, it runs the correlation algorithm
// and issues every surviving candidate to the host via
// host.PrefetchLine. Hits and prefetch-triggered accesses never train
// the predictor. metadataIn is returned unchanged; the predictor
// carries no per-access metadata of its own.
func (a *Adapter) OnAccess(
	addr, pc uint64,
	wasHit bool,
	accessType host.AccessType,
	metadataIn uint32,
) uint32 {
	if a.host == nil || wasHit || accessType == host.Prefetch {
		return metadataIn
	}

	t, err := a.registry.Table(a.host)
	if err != nil {
		return metadataIn
	}

	result := t.DCPT(pc, addr)
	for _, c := range result.Issued {
		a.host.PrefetchLine(c, true, 0)
	}

	a.tracer.Trace(tracing.Decision{
		AdapterID:    a.id.String(),
		PC:           pc,
		Addr:         addr,
		EntryCreated: result.EntryCreated,
		Candidates:   result.Candidates,
		Issued:       result.Issued,
	})

	return metadataIn
}

// OnFill is the on_fill hook. It returns its input unchanged; the
// predictor does not use fill notifications.
func (a *Adapter) OnFill(
	addr uint64,
	setIndex, wayIndex int,
	wasPrefetch bool,
	evictedAddr uint64,
	metadataIn uint32,
) uint32 {
	return metadataIn
}

// OnCycle is the on_cycle hook. The predictor has no timers or
// background work, so this is a no-op.
func (a *Adapter) OnCycle() {}

// Teardown detaches the Adapter from h, discarding its Index Table.
// It is an error to call Teardown on a host this Adapter was not
// initialized with.
func (a *Adapter) Teardown(h host.Host) error {
	if a.host == nil || a.host != h {
		return ErrNotInitialized
	}

	if err := a.registry.Unregister(h); err != nil {
		return err
	}

	a.host = nil

	return nil
}
