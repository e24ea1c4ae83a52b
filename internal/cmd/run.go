package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/genry-dev/genry/internal/bridge"
	"github.com/genry-dev/genry/internal/config"
	"github.com/genry-dev/genry/internal/output"
	"github.com/genry-dev/genry/internal/picker"
	"github.com/genry-dev/genry/internal/runtime"
	"github.com/genry-dev/genry/internal/template"
)

// notifier is the slice of the editor bridge the pipeline needs.
type notifier interface {
	Emit(event bridge.Event)
	ServerID() string
	TerminalID() string
}

// scaffoldDeps are the collaborators of the default flow, injectable in tests.
type scaffoldDeps struct {
	rt   runtime.Runtime
	pick func([]template.Template) (*template.Template, error)
	br   notifier
}

// runScaffold is the default flow: resolve config, load templates, pick one,
// invoke its generation routine.
func runScaffold(cmd *cobra.Command, _ []string) error {
	target, err := filepath.Abs(pathFlag)
	if err != nil {
		return NewExitError(fmt.Errorf("resolving target path: %w", err), ExitUsageError)
	}

	res, err := config.Resolve(target, configFlag)
	if err != nil {
		return NewExitError(err, ExitUsageError)
	}

	deps := scaffoldDeps{
		rt:   runtime.New(res.Config.Loader),
		pick: picker.Pick,
		br:   bridge.New(ipcServerFlag, terminalIDFlag),
	}
	return run(cmd.Context(), deps, target, res)
}

// run wraps the pipeline so the end notification fires on every outcome,
// error paths included.
func run(ctx context.Context, deps scaffoldDeps, target string, res *config.Resolved) error {
	defer deps.br.Emit(bridge.EventEnd)
	return runPipeline(ctx, deps, target, res)
}

// runPipeline runs load → pick → generate against resolved configuration.
func runPipeline(ctx context.Context, deps scaffoldDeps, target string, res *config.Resolved) error {
	loader := template.NewLoader(deps.rt, nil)

	var templates []template.Template
	err := output.RunWithSpinner(ctx, func() error {
		var lerr error
		templates, lerr = loader.Load(ctx, res.PackageRoot, res.Config)
		return lerr
	}, output.WithTitle("Loading templates..."))
	if err != nil {
		return NewExitError(err, ExitUsageError)
	}

	if len(templates) == 0 {
		deps.br.Emit(bridge.EventNotFound)
		output.Warn("no templates found", "root", res.PackageRoot, "include", res.Config.Include)
		return nil
	}
	deps.br.Emit(bridge.EventFound)

	selected, err := deps.pick(templates)
	if err != nil {
		return err
	}
	if selected == nil {
		output.Info("selection cancelled")
		return nil
	}

	runCtx := template.RunContext{
		TargetPath:  target,
		PackageRoot: res.PackageRoot,
		IPCServerID: deps.br.ServerID(),
		TerminalID:  deps.br.TerminalID(),
	}
	payload, err := runCtx.Payload(res.Config)
	if err != nil {
		return NewExitError(fmt.Errorf("building run context: %w", err), ExitGenerationError)
	}

	output.Debug("invoking template", "name", selected.Name, "source", selected.Source)

	// Exactly one generation call per run, no retries. A failure here is the
	// run's failure.
	if err := deps.rt.Generate(ctx, selected.Source, res.PackageRoot, payload); err != nil {
		return NewExitError(fmt.Errorf("template %q: %w", selected.Name, err), ExitGenerationError)
	}

	output.Println(fmt.Sprintf("%s %s → %s", output.Check(), output.Noun(selected.Name), target))
	return nil
}
