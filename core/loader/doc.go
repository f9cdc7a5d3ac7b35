// Package loader reads JSON documents from a storage client.
//
// Structural problems with an input file are reported with typed errors so callers
// can tell them apart:
//
//   - MissingFileError: the file does not exist (see storage.Client.Exists).
//   - ParseError: the file exists but its content is not valid JSON for the target.
//
// Both are fatal for the dataset being loaded; neither is retried.
//
// # Usage
//
//	var titles map[string]string
//	if err := loader.LoadJSON(client, "resources/portugal/portugal_en.json", &titles); err != nil {
//	    var missing *loader.MissingFileError
//	    if errors.As(err, &missing) { ... }
//	}
package loader
