package checks

import (
	"fmt"

	"region-cards/core/storage"
)

// CheckDataFiles returns the data file paths that do not exist.
func CheckDataFiles(client storage.Client, paths ...string) ([]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no data files to check")
	}

	var missing []string
	for _, path := range paths {
		if !client.Exists(path) {
			missing = append(missing, path)
		}
	}

	return missing, nil
}
