// Package storage provides an abstraction layer over the filesystem holding a dataset.
//
// It wraps afero to provide a simplified interface for the few operations the
// dataset pipeline needs: checking that a regular file exists, reading a file,
// and listing the files of a directory that carry a given extension. Backing the
// client with afero lets tests run against an in-memory filesystem.
//
// # Client Interface
//
// The Client interface abstracts the underlying filesystem, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - Exists: True only for regular files; directories and missing paths are false.
//   - ReadFile: Reads a whole file.
//   - ListFiles: Lists file names in a directory filtered by suffix (e.g. ".png").
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if client.Exists("resources/portugal/map.png") { ... }
package storage
