package tui

import "github.com/charmbracelet/lipgloss"

// Color palette matching the fatih/color usage in the CLI output.
var (
	ColorGreen  = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}
	ColorCyan   = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}
	ColorWhite  = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}
	ColorGray   = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
)

// Reusable styles.
var (
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StyleDim = lipgloss.NewStyle().Foreground(ColorGray)

	StyleOwned = lipgloss.NewStyle().Foreground(ColorGreen)
)
