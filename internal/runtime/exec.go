package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Exec runs template files with os/exec.
type Exec struct {
	// interpreters maps a file extension to the interpreter command used for
	// files without the executable bit.
	interpreters map[string]string

	// Stdout and Stderr can be set for testing; generation defaults to the
	// process's own streams so templates can prompt and print.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// New creates an Exec runtime. The loader map from the run configuration
// overrides the built-in interpreter defaults per extension.
func New(loader map[string]string) *Exec {
	interpreters := make(map[string]string, len(defaultInterpreters)+len(loader))
	for ext, cmd := range defaultInterpreters {
		interpreters[ext] = cmd
	}
	for ext, cmd := range loader {
		interpreters[ext] = cmd
	}
	return &Exec{interpreters: interpreters}
}

// Describe implements Runtime. It captures stdout; stderr is folded into the
// error on failure so a broken template file can be diagnosed from the log.
func (e *Exec) Describe(ctx context.Context, file string) ([]byte, error) {
	cmd, err := e.command(ctx, file, "describe")
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("describe %s: %w: %s", filepath.Base(file), err, msg)
		}
		return nil, fmt.Errorf("describe %s: %w", filepath.Base(file), err)
	}

	return stdout.Bytes(), nil
}

// Generate implements Runtime. Stdio is inherited so the template's own
// prompts and progress reach the user directly.
func (e *Exec) Generate(ctx context.Context, file, dir string, payload []byte) error {
	cmd, err := e.command(ctx, file, "generate", string(payload))
	if err != nil {
		return err
	}

	cmd.Dir = dir
	cmd.Stdout = e.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Stdin = e.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("generate %s: %w", filepath.Base(file), err)
	}
	return nil
}

// command builds the exec.Cmd for a template file: direct execution when the
// executable bit is set, interpreter dispatch by extension otherwise.
func (e *Exec) command(ctx context.Context, file string, args ...string) (*exec.Cmd, error) {
	info, err := os.Stat(file)
	if err != nil {
		return nil, fmt.Errorf("template file: %w", err)
	}

	if info.Mode()&0o111 != 0 {
		return exec.CommandContext(ctx, file, args...), nil
	}

	ext := filepath.Ext(file)
	interp, ok := e.interpreters[ext]
	if !ok {
		return nil, fmt.Errorf("no interpreter configured for %q files (extend the loader map in .genryrc)", ext)
	}

	// A blank loader entry is as unusable as a missing one.
	parts := strings.Fields(interp)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty interpreter configured for %q files (fix the loader map in .genryrc)", ext)
	}
	bin, err := exec.LookPath(parts[0])
	if err != nil {
		return nil, fmt.Errorf("interpreter %q for %q files: %w", parts[0], ext, err)
	}

	argv := append(parts[1:], file)
	argv = append(argv, args...)
	return exec.CommandContext(ctx, bin, argv...), nil
}
