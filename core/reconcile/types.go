package reconcile

// ReconcileResult represents the reconciliation output for a single file name.
// It contains presence flags for each source.
type ReconcileResult struct {
	// ID is the file name (basename) being reconciled.
	ID string `json:"id"`

	// DiskPresent indicates whether the file exists in the directory.
	DiskPresent bool `json:"disk_present"`

	// DataPresent indicates whether the file is referenced by the dataset.
	DataPresent bool `json:"data_present"`
}

// Stray reports a file that is on disk but never referenced by the data.
func (r ReconcileResult) Stray() bool {
	return r.DiskPresent && !r.DataPresent
}

// Missing reports a file that the data references but the directory lacks.
func (r ReconcileResult) Missing() bool {
	return r.DataPresent && !r.DiskPresent
}

// Summary provides aggregate counts over a set of results.
type Summary struct {
	// Total is the number of unique keys across both sources.
	Total int `json:"total"`

	// Matched counts keys present in both sources.
	Matched int `json:"matched"`

	// Stray counts keys present on disk only.
	Stray int `json:"stray"`

	// Missing counts keys present in the data only.
	Missing int `json:"missing"`
}

// Clean reports whether both sources agree exactly.
func (s Summary) Clean() bool {
	return s.Stray == 0 && s.Missing == 0
}
