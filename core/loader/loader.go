package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"region-cards/core/storage"
)

// LoadJSON reads the file at path and decodes its JSON content into v.
func LoadJSON(client storage.Client, path string, v any) error {
	if !client.Exists(path) {
		return &MissingFileError{Path: path}
	}

	data, err := client.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return &ParseError{Path: path, Err: errors.New("content is not valid UTF-8")}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}
