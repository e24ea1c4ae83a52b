// Package cmd provides CLI command implementations.
package cmd

// Exit codes for the genry CLI.
const (
	// ExitSuccess indicates the run completed, including the "no templates
	// found" and "user cancelled" outcomes.
	ExitSuccess = 0

	// ExitGenerationError indicates the chosen template's generation routine
	// failed.
	ExitGenerationError = 1

	// ExitUsageError indicates invalid flags or an unloadable configuration.
	ExitUsageError = 2
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGenerationError:
		return "Generation Error"
	case ExitUsageError:
		return "Usage Error"
	default:
		return "Unknown"
	}
}
