package checks

import (
	"fmt"

	"region-cards/core/reconcile"
	"region-cards/core/storage"

	"go.uber.org/zap"
)

// ImageReport is the result of comparing a directory's images with the images a dataset references.
type ImageReport struct {
	// Stray lists image files present in the directory but never referenced.
	Stray []string `json:"stray"`
	// Missing lists images referenced by the data but absent from the directory.
	Missing []string `json:"missing"`
	// Summary holds the aggregate counts.
	Summary reconcile.Summary `json:"summary"`
	// Valid is true when the two sets are identical.
	Valid bool `json:"valid"`
}

// CrossCheck compares the files in dir ending with ext against the referenced basenames.
// Every stray file is logged as a warning and every missing one as an informational note.
// The result is advisory; an error is returned only when dir cannot be listed.
func CrossCheck(client storage.Client, logger *zap.Logger, dir, ext string, referenced []string) (*ImageReport, error) {
	onDisk, err := client.ListFiles(dir, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}

	results := reconcile.ReconcileSets(onDisk, reconcile.ToSet(referenced))

	report := &ImageReport{
		Stray:   []string{},
		Missing: []string{},
		Summary: reconcile.Summarize(results),
	}

	for _, r := range results {
		switch {
		case r.Stray():
			report.Stray = append(report.Stray, r.ID)
			logger.Warn("Image file in directory but not referenced by data", zap.String("file", r.ID))
		case r.Missing():
			report.Missing = append(report.Missing, r.ID)
			logger.Info("Image referenced by data but not in directory", zap.String("file", r.ID))
		}
	}

	report.Valid = report.Summary.Clean()
	return report, nil
}
