// Package fileio provides the whole-file loader and writer used around the
// in-memory parse, merge and validate steps.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Loader yields the full text stored under a name.
type Loader interface {
	Load(name string) (string, error)
}

// Writer persists generated text under a name.
type Writer interface {
	Write(name, data string) error
}

const utf8BOM = "\ufeff"

// FS loads and writes files on the local disk. Relative names are resolved
// against Root when it is set.
type FS struct {
	Root string
}

// NewFS creates a file system rooted at root ("" means the working directory).
func NewFS(root string) *FS {
	return &FS{Root: root}
}

func (fs *FS) path(name string) string {
	if fs.Root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(fs.Root, name)
}

// Load reads the whole file and strips a leading UTF-8 byte order mark.
func (fs *FS) Load(name string) (string, error) {
	p := fs.path(name)
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}

	log.Debug().Str("file", p).Int("bytes", len(data)).Msg("Loaded file")
	return strings.TrimPrefix(string(data), utf8BOM), nil
}

// Write creates parent directories as needed and replaces the file.
func (fs *FS) Write(name, data string) error {
	p := fs.path(name)
	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(p, []byte(data), 0644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}

	log.Debug().Str("file", p).Int("bytes", len(data)).Msg("Wrote file")
	return nil
}
