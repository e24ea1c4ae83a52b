// Package template implements template discovery, loading, and the run
// context handed to a template's generation routine.
package template

import (
	"encoding/json"

	"github.com/genry-dev/genry/internal/config"
)

// Template is one selectable generator, produced from a template file's
// describe output. Identity is by value within a single run; nothing is
// persisted. Duplicate names across files are allowed and kept.
type Template struct {
	// Name identifies the template in the picker.
	Name string

	// Description is optional free text shown alongside the name.
	Description string

	// Source is the template file that described this entry; generation
	// re-invokes it.
	Source string
}

// RunContext is the fixed set of values passed to the chosen template's
// generation call. Constructed once from CLI arguments, never mutated.
type RunContext struct {
	// TargetPath is the absolute directory the template generates into.
	TargetPath string `json:"targetPath"`

	// PackageRoot is the absolute package root the templates were loaded from.
	PackageRoot string `json:"packageRoot"`

	// IPCServerID is the editor-integration channel id, if any.
	IPCServerID string `json:"ipcServerId,omitempty"`

	// TerminalID is the editor-integration terminal id, if any.
	TerminalID string `json:"terminalId,omitempty"`
}

// generatePayload is the JSON document passed to a template's generate mode.
type generatePayload struct {
	RunContext
	Config *config.Config `json:"config,omitempty"`
}

// Payload serializes the run context and run configuration for the generate
// call.
func (c RunContext) Payload(cfg *config.Config) ([]byte, error) {
	return json.Marshal(generatePayload{RunContext: c, Config: cfg})
}
