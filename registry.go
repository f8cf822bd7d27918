package dcpt

import (
	"github.com/sarchlab/dcpt/host"
	"github.com/sarchlab/dcpt/internal/table"
)

// Registry maps a host to the Index Table attached to it, mirroring
// the original predictor's global host-to-table map. A process
// embedding more than one cache (e.g. a private L1 per core sharing
// this predictor's code) registers one table per host.
//
// Registry is keyed directly on the host.Host interface value, so a
// Host implementation must use a pointer receiver: two different
// *MyCache values must never compare equal, and the same *MyCache
// must keep comparing equal to itself for as long as it is
// registered. Registry is not safe for concurrent use; callers
// running more than one goroutine must serialize their own access to
// it, the same way the predictor assumes single-threaded operation
// throughout.
type Registry struct {
	tables map[host.Host]*table.Table
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[host.Host]*table.Table)}
}

// Register attaches t to h, replacing any table previously registered
// for h.
func (r *Registry) Register(h host.Host, t *table.Table) {
	r.tables[h] = t
}

// Table returns the table registered for h, or ErrUnknownHost if none
// has been registered.
func (r *Registry) Table(h host.Host) (*table.Table, error) {
	t, ok := r.tables[h]
	if !ok {
		return nil, ErrUnknownHost
	}

	return t, nil
}

// Unregister removes h's table, or returns ErrUnknownHost if h has no
// registered table.
func (r *Registry) Unregister(h host.Host) error {
	if _, ok := r.tables[h]; !ok {
		return ErrUnknownHost
	}

	delete(r.tables, h)

	return nil
}

// Len reports the number of hosts currently registered.
func (r *Registry) Len() int {
	return len(r.tables)
}
