// Command dcptsim drives a synthetic memory-access trace through a
// dcpt.Adapter backed by a minimal in-memory reference cache, and
// reports prefetch issue/coverage statistics. It exists so this
// repository is runnable end to end without requiring an external
// cache simulator; it is not the "host cache" the predictor attaches
// to in production.
package main

func main() {
	Execute()
}
