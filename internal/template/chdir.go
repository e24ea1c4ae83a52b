package template

import (
	"fmt"
	"os"
	"sync"
)

// chdirGuard scopes a working-directory change. The working directory is the
// one piece of process-global state the loader mutates; Restore puts it back
// exactly once no matter how many exit paths run it.
type chdirGuard struct {
	prev string
	once sync.Once
	err  error
}

// pushd changes the working directory to dir and returns a guard that
// restores the previous directory.
func pushd(dir string) (*chdirGuard, error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("reading working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("entering %s: %w", dir, err)
	}
	return &chdirGuard{prev: prev}, nil
}

// Restore returns to the directory captured by pushd. Safe to call more than
// once; only the first call changes directory.
func (g *chdirGuard) Restore() error {
	g.once.Do(func() {
		g.err = os.Chdir(g.prev)
	})
	return g.err
}
