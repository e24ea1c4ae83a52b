package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: template names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for secondary text such as template descriptions.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (template names, directories).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles secondary text (descriptions, hints).
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleCheck styles the completion checkmark.
	StyleCheck = lipgloss.NewStyle().Foreground(ColorGreenCheck)
)

// Noun renders s with the noun style.
func Noun(s string) string {
	return StyleNoun.Render(s)
}

// Dim renders s with the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}

// Check returns a styled completion checkmark.
func Check() string {
	return StyleCheck.Render("✔")
}
