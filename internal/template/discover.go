package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/genry-dev/genry/internal/config"
)

// Discover expands the include glob against the package root and filters out
// exclude matches. Results are absolute paths in deterministic walk order —
// this order is the discovery order the loader preserves. Directories never
// match; dotfiles do.
func Discover(root string, cfg *config.Config) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), cfg.Include, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("include pattern %q: %w", cfg.Include, err)
	}

	var files []string
	for _, rel := range matches {
		if cfg.Exclude != "" {
			excluded, err := doublestar.Match(cfg.Exclude, rel)
			if err != nil {
				return nil, fmt.Errorf("exclude pattern %q: %w", cfg.Exclude, err)
			}
			if excluded {
				continue
			}
		}
		files = append(files, filepath.Join(root, rel))
	}

	return files, nil
}
