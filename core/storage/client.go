package storage

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Client defines the interface for filesystem operations on a resources directory.
type Client interface {
	// Exists reports whether path names an existing regular file.
	Exists(path string) bool
	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)
	// ListFiles returns the names of regular files directly inside dir whose name ends with ext.
	ListFiles(dir, ext string) (map[string]struct{}, error)
}

// NewClient creates a new OS-backed client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	var fs afero.Fs = afero.NewOsFs()
	if cfg.ReadOnly {
		fs = afero.NewReadOnlyFs(fs)
	}
	return NewFromFs(fs), nil
}

// NewFromFs creates a client on top of an arbitrary afero filesystem.
func NewFromFs(fs afero.Fs) Client {
	return &aferoClient{fs: fs}
}

type aferoClient struct {
	fs afero.Fs
}

func (c *aferoClient) Exists(path string) bool {
	info, err := c.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func (c *aferoClient) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(c.fs, path)
}

func (c *aferoClient) ListFiles(dir, ext string) (map[string]struct{}, error) {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	files := make(map[string]struct{})
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ext) {
			files[entry.Name()] = struct{}{}
		}
	}
	return files, nil
}
