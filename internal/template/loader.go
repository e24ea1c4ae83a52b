package template

import (
	"context"
	"sync"

	"github.com/genry-dev/genry/internal/config"
	"github.com/genry-dev/genry/internal/output"
	"github.com/genry-dev/genry/internal/version"
)

// Describer is the slice of the runtime the loader needs.
type Describer interface {
	Describe(ctx context.Context, file string) ([]byte, error)
}

// Observer receives loader progress. Observational only: nothing the loader
// decides depends on it.
type Observer interface {
	// Found reports the number of candidate files about to be loaded.
	Found(files int)

	// NotFound reports that the include pattern matched nothing. A distinct
	// outcome, not an error.
	NotFound()
}

// logObserver is the default Observer, reporting through the global logger.
type logObserver struct{}

func (logObserver) Found(files int) {
	output.Info("templates found", "files", files)
}

func (logObserver) NotFound() {
	output.Warn("no template files found")
}

// Loader discovers template files and turns their describe output into
// Template records.
type Loader struct {
	rt  Describer
	obs Observer

	// cliVersion gates descriptors carrying a minCliVersion constraint.
	cliVersion string
}

// NewLoader creates a Loader. A nil observer falls back to log output.
func NewLoader(rt Describer, obs Observer) *Loader {
	if obs == nil {
		obs = logObserver{}
	}
	return &Loader{rt: rt, obs: obs, cliVersion: version.Version}
}

// describeResult carries one file's outcome back from the fan-out.
type describeResult struct {
	index int
	file  string
	descs []Descriptor
	err   error
}

// Load expands the configured globs under root and describes every candidate
// file concurrently, waiting for all of them before returning. The working
// directory is root for the whole load step so template code resolving
// relative paths sees the package root; the previous directory is restored
// on every exit path.
//
// One failing file contributes zero templates and never aborts the load.
// Zero matches yield a nil slice and a NotFound observation, not an error.
func (l *Loader) Load(ctx context.Context, root string, cfg *config.Config) ([]Template, error) {
	files, err := Discover(root, cfg)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		l.obs.NotFound()
		return nil, nil
	}
	l.obs.Found(len(files))

	guard, err := pushd(root)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr := guard.Restore(); rerr != nil {
			output.Error("restoring working directory", "error", rerr)
		}
	}()

	resultCh := make(chan describeResult, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			resultCh <- l.describe(ctx, i, file)
		}(i, file)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Reassemble in discovery order: file order first, in-document order
	// within each file.
	ordered := make([][]Descriptor, len(files))
	for res := range resultCh {
		if res.err != nil {
			output.Warn("skipping template file", "file", res.file, "error", res.err)
			continue
		}
		ordered[res.index] = res.descs
	}

	var templates []Template
	seen := make(map[string]bool)
	for i, descs := range ordered {
		for _, d := range descs {
			if seen[d.Name] {
				output.Debug("duplicate template name", "name", d.Name, "file", files[i])
			}
			seen[d.Name] = true
			templates = append(templates, Template{
				Name:        d.Name,
				Description: d.Description,
				Source:      files[i],
			})
		}
	}

	return templates, nil
}

// describe runs one candidate file and filters its descriptors through the
// minCliVersion gate.
func (l *Loader) describe(ctx context.Context, index int, file string) describeResult {
	out, err := l.rt.Describe(ctx, file)
	if err != nil {
		return describeResult{index: index, file: file, err: err}
	}

	descs, err := ParseDescriptors(out)
	if err != nil {
		return describeResult{index: index, file: file, err: err}
	}

	kept := descs[:0]
	for _, d := range descs {
		ok, err := d.Compatible(l.cliVersion)
		if err != nil {
			return describeResult{index: index, file: file, err: err}
		}
		if !ok {
			output.Warn("template requires a newer CLI",
				"name", d.Name,
				"minCliVersion", d.MinCLIVersion,
				"cliVersion", l.cliVersion,
			)
			continue
		}
		kept = append(kept, d)
	}

	return describeResult{index: index, file: file, descs: kept}
}
