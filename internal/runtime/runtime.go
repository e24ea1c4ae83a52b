// Package runtime executes template files as subprocesses.
//
// A template file is an arbitrary executable module, not a declarative
// document. The CLI talks to it through a two-mode argv protocol:
//
//	<file> describe                 — print template descriptors to stdout
//	<file> generate <context-json>  — run the generation routine
//
// Files with the executable bit set run directly; everything else runs
// through an interpreter resolved from the run configuration by extension.
package runtime

import "context"

// Runtime is the capability interface for loading and invoking templates.
// It abstracts the plugin mechanism so the loader and invoker never touch
// process details.
type Runtime interface {
	// Describe runs the template file in describe mode and returns its raw
	// stdout. The file contributes zero templates if Describe fails.
	Describe(ctx context.Context, file string) ([]byte, error)

	// Generate runs the template file's generation routine with dir as the
	// working directory and payload as the serialized run context. Called at
	// most once per run. Failures propagate untouched.
	Generate(ctx context.Context, file, dir string, payload []byte) error
}

// Default interpreter commands by extension, overridable per run through the
// rc file's loader map.
var defaultInterpreters = map[string]string{
	".sh": "sh",
	".js": "node",
	".ts": "deno run -A",
	".py": "python3",
}
