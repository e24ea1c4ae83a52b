package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/genry-dev/genry/internal/output"
)

// manifestFiles mark a directory as a package root, checked in order.
var manifestFiles = []string{
	"package.json",
	"go.mod",
	".genryrc.yaml",
	".genryrc.yml",
	".genryrc.json",
}

// Resolved is the outcome of config resolution for one run.
type Resolved struct {
	// PackageRoot is the nearest package root above the start path.
	PackageRoot string

	// Config is the run configuration with defaults applied.
	Config *Config
}

// FindPackageRoot walks up from start looking for the nearest directory
// containing a manifest file. The boolean reports whether one was found;
// when false the returned root equals start.
func FindPackageRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolving start path: %w", err)
	}

	for {
		for _, name := range manifestFiles {
			info, err := os.Stat(filepath.Join(dir, name))
			if err == nil && !info.IsDir() {
				return dir, true, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	root, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	return root, false, nil
}

// Resolve locates the package root above startPath and loads the run
// configuration from it. When no manifest is found the start path itself
// serves as the root, with a warning.
func Resolve(startPath, configFile string) (*Resolved, error) {
	root, found, err := FindPackageRoot(startPath)
	if err != nil {
		return nil, err
	}
	if !found {
		output.Warn("no package manifest found, using target directory as package root", "root", root)
	}

	cfg, err := NewLoader().Load(root, configFile)
	if err != nil {
		return nil, err
	}

	output.Debug("config resolved",
		"packageRoot", root,
		"include", cfg.Include,
		"exclude", cfg.Exclude,
	)

	return &Resolved{PackageRoot: root, Config: cfg}, nil
}
