package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultExtensions lists the file types treated as tagged locale files.
var DefaultExtensions = []string{".txt"}

// Walker expands command line paths into locale files.
type Walker struct {
	extensions map[string]bool
}

// NewWalker creates a Walker matching the given extensions, or
// DefaultExtensions when none are given.
func NewWalker(extensions ...string) *Walker {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	w := &Walker{extensions: make(map[string]bool, len(extensions))}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		w.extensions[ext] = true
	}
	return w
}

// Expand returns every matching file under the given paths. Files named
// explicitly are kept whatever their extension; directories are walked.
// The result is sorted and free of duplicates.
func (w *Walker) Expand(paths []string) ([]string, error) {
	set := make(map[string]struct{})

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			set[filepath.Clean(p)] = struct{}{}
			continue
		}

		files, err := w.Walk(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			set[f] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out, nil
}

// Walk discovers all matching files under the given root directory.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if w.extensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	log.Info().Int("count", len(files)).Str("root", root).Msg("Discovered files")
	return files, nil
}
