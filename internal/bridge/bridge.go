// Package bridge emits run lifecycle notifications to an optional editor
// extension. Purely observational: delivery failures are logged at debug
// level and never influence the run.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/genry-dev/genry/internal/output"
)

// Event is a run lifecycle notification.
type Event string

const (
	// EventFound signals that templates were loaded.
	EventFound Event = "found"

	// EventNotFound signals that discovery matched no template files.
	EventNotFound Event = "notFound"

	// EventEnd signals the end of the run, emitted on every outcome.
	EventEnd Event = "end"
)

// emitTimeout bounds a single notification round trip.
const emitTimeout = 2 * time.Second

// Bridge notifies an editor extension over a unix-domain socket keyed by the
// IPC server id. A zero server id disables the bridge entirely.
type Bridge struct {
	serverID   string
	terminalID string
	client     *http.Client
}

// message is the JSON body of one notification.
type message struct {
	Event      Event  `json:"event"`
	TerminalID string `json:"terminalId,omitempty"`
}

// New creates a Bridge for the given IPC ids. Empty serverID yields a
// disabled bridge whose Emit is a no-op.
func New(serverID, terminalID string) *Bridge {
	b := &Bridge{serverID: serverID, terminalID: terminalID}
	if serverID == "" {
		return b
	}

	socket := SocketPath(serverID)
	b.client = &http.Client{
		Timeout: emitTimeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "unix", socket)
			},
		},
	}
	return b
}

// SocketPath derives the notification socket path for an IPC server id.
func SocketPath(serverID string) string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, fmt.Sprintf("genry-%s.sock", serverID))
}

// Enabled reports whether notifications will be sent.
func (b *Bridge) Enabled() bool {
	return b.client != nil
}

// ServerID returns the IPC server id, empty when disabled.
func (b *Bridge) ServerID() string {
	return b.serverID
}

// TerminalID returns the editor terminal id, empty when unset.
func (b *Bridge) TerminalID() string {
	return b.terminalID
}

// Emit sends one lifecycle notification. Failures are swallowed after a
// debug log; the listener is an observer, never a dependency.
func (b *Bridge) Emit(event Event) {
	if !b.Enabled() {
		return
	}

	body, err := json.Marshal(message{Event: event, TerminalID: b.terminalID})
	if err != nil {
		output.Debug("bridge marshal failed", "event", event, "error", err)
		return
	}

	// Host is ignored by the unix-socket dialer but required by the URL.
	resp, err := b.client.Post("http://genry/event", "application/json", bytes.NewReader(body))
	if err != nil {
		output.Debug("bridge emit failed", "event", event, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		output.Debug("bridge emit rejected", "event", event, "status", resp.StatusCode)
	}
}
