// Package reconcile compares two sources of truth for a set of file names:
// the files actually present in a directory, and the files a dataset references.
//
// # Architecture
//
// The engine builds the union of keys from both sources and emits one
// ReconcileResult per key with a presence flag for each source. A key only on
// disk is "stray"; a key only in the data is "missing".
//
// Results are sorted by key so reports are deterministic even though the inputs
// are sets.
//
// # Usage Example
//
//	results := reconcile.ReconcileSets(dirFiles, reconcile.ToSet(referenced))
//	summary := reconcile.Summarize(results)
//	if !summary.Clean() { ... }
package reconcile
