package table

import "errors"

// ErrInvalidConfiguration is returned by NewTable when the requested
// geometry cannot describe a table (a non-positive number of sets or
// ways).
var ErrInvalidConfiguration = errors.New("table: invalid configuration")
