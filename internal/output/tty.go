package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether both stdin and stdout are attached to a terminal.
// Interactive elements (spinner, picker) degrade to plain output when false.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
