// Package dataset holds the configuration that selects a region dataset:
// the resources directory, the items and titles file names, the image
// extension under check, and whether verification logs per-item warnings.
package dataset
