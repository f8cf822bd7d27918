// Package dcpt implements a delta-correlating prediction table
// prefetcher: a hardware-style cache prefetcher that, on each demand
// miss, correlates the sequence of deltas observed for a given
// program counter to predict future memory addresses.
//
// The predictor attaches to a host cache through the host.Host
// interface. Construct an Adapter with Builder.Build, which also
// initializes it against the host (or call Initialize once on a
// zero-value Adapter), forward every cache access through OnAccess,
// and call Teardown when the host cache is destroyed.
package dcpt
