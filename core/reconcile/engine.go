package reconcile

import (
	"sort"
)

// ReconcileSets compares the set of keys found on disk with the set referenced by data.
// It builds the union of both sets and returns one result per key, sorted by key.
func ReconcileSets(onDisk, referenced map[string]struct{}) []ReconcileResult {
	unionKeys := buildUnion(onDisk, referenced)

	results := make([]ReconcileResult, 0, len(unionKeys))
	for key := range unionKeys {
		results = append(results, buildResult(key, onDisk, referenced))
	}

	// Sort results by key for deterministic output
	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})

	return results
}

// ToSet turns a list of keys into a set, collapsing duplicates.
func ToSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

// Summarize counts matched, stray and missing keys.
func Summarize(results []ReconcileResult) Summary {
	summary := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Stray():
			summary.Stray++
		case r.Missing():
			summary.Missing++
		default:
			summary.Matched++
		}
	}
	return summary
}

// buildUnion creates a union of the keys from both sources.
func buildUnion(onDisk, referenced map[string]struct{}) map[string]struct{} {
	union := make(map[string]struct{}, len(onDisk)+len(referenced))

	for key := range onDisk {
		union[key] = struct{}{}
	}
	for key := range referenced {
		union[key] = struct{}{}
	}

	return union
}

// buildResult creates a ReconcileResult for a single key.
func buildResult(key string, onDisk, referenced map[string]struct{}) ReconcileResult {
	_, diskPresent := onDisk[key]
	_, dataPresent := referenced[key]

	return ReconcileResult{
		ID:          key,
		DiskPresent: diskPresent,
		DataPresent: dataPresent,
	}
}
