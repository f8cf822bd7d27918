package dcpt

import (
	"github.com/sarchlab/dcpt/host"
	"github.com/sarchlab/dcpt/internal/table"
	"github.com/sarchlab/dcpt/tracing"
)

// defaultConfig is the predictor's default geometry: S=128, W=4,
// n=19, delta_bits=12, i=2. BlockSize is left zero here; Adapter fills
// it in from the host at Initialize time, since the predictor has no
// opinion of its own about line size.
func defaultConfig() table.Config {
	return table.Config{
		NumSets:      128,
		Ways:         4,
		WindowLength: 19,
		DeltaBits:    12,
		SearchLength: 2,
	}
}

// Builder configures and constructs an Adapter using a
// method-chaining pattern: every With... method returns a modified
// copy, so a Builder can be reused as a template for several Adapters
// with only a few fields varying.
type Builder struct {
	cfg    table.Config
	tracer tracing.Tracer
}

// MakeBuilder returns a Builder preloaded with the predictor's
// default geometry.
func MakeBuilder() Builder {
	return Builder{cfg: defaultConfig()}
}

// WithNumSets sets the Index Table's set count (S).
func (b Builder) WithNumSets(s int) Builder {
	b.cfg.NumSets = s
	return b
}

// WithWays sets the Index Table's associativity (W).
func (b Builder) WithWays(w int) Builder {
	b.cfg.Ways = w
	return b
}

// WithWindowLength sets the Delta Entry window length (n).
func (b Builder) WithWindowLength(n int) Builder {
	b.cfg.WindowLength = n
	return b
}

// WithDeltaBits sets the delta overflow width, in bits (delta_bits).
func (b Builder) WithDeltaBits(bits uint) Builder {
	b.cfg.DeltaBits = bits
	return b
}

// WithSearchLength sets the correlation pattern length (i).
func (b Builder) WithSearchLength(i int) Builder {
	b.cfg.SearchLength = i
	return b
}

// WithTracer attaches a tracing.Tracer that observes every prefetch
// decision the built Adapter makes. The default is tracing.NopTracer.
func (b Builder) WithTracer(t tracing.Tracer) Builder {
	b.tracer = t
	return b
}

// Build constructs an Adapter with the configured geometry and
// initializes it against h in the same step.
func (b Builder) Build(h host.Host) (*Adapter, error) {
	a := &Adapter{cfg: b.cfg, tracer: b.tracer}

	if err := a.Initialize(h); err != nil {
		return nil, err
	}

	return a, nil
}
