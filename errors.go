package dcpt

import (
	"errors"

	"github.com/sarchlab/dcpt/internal/table"
)

// ErrInvalidConfiguration is returned by Builder.Build when the
// requested geometry cannot describe an Index Table (a non-positive
// number of sets or ways). It is the same sentinel
// internal/table.NewTable returns, re-exported here so callers never
// need to import internal/table themselves to check it.
var ErrInvalidConfiguration = table.ErrInvalidConfiguration

// ErrUnknownHost is returned by Registry operations against a host
// with no registered table, rather than panicking, so the caller can
// decide how to treat the programmer error.
var ErrUnknownHost = errors.New("dcpt: operation against unregistered host")

// ErrAlreadyInitialized is returned by Adapter.Initialize if it is
// called a second time without an intervening Teardown.
var ErrAlreadyInitialized = errors.New("dcpt: adapter already initialized")

// ErrNotInitialized is returned by Adapter.Teardown when the Adapter
// is not attached to the given host: before Initialize, after
// Teardown, or when called with a different host.
var ErrNotInitialized = errors.New("dcpt: adapter not initialized")
