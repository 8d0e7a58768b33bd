// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#5C5F77", Dark: "#BBBBBB"} // Line numbers, secondary info
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Border
	BorderDefaultColor  = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"} // Unfocused borders
	BorderFocusColor    = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#FFFFFF"} // Focused pane border
	SelectionColor      = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"} // Selected file row
	StatusErrorColor    = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF8787"} // Errors
	StatusSuccessColor  = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#73F59F"} // Success states
	OverlayTitleColor   = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#C9C9C9"}
	OverlayBorderColor  = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#8C8C8C"}

	// File status letter colors
	FileModifiedColor  = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	FileAddedColor     = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#73F59F"}
	FileDeletedColor   = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF8787"}
	FileRenamedColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	FileUnmergedColor  = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	FileUntrackedColor = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#777777"}

	// Diff line colors
	DiffAdditionColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#73F59F"}
	DiffDeletionColor = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF8787"}
	DiffHunkColor     = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}
	DiffContextColor  = lipgloss.AdaptiveColor{Light: "#6C6F85", Dark: "#999999"}

	// Word-level diff backgrounds
	DiffAddedWordBgColor   = lipgloss.AdaptiveColor{Light: "#CCE5CC", Dark: "#2D4A2D"}
	DiffDeletedWordBgColor = lipgloss.AdaptiveColor{Light: "#E5CCCC", Dark: "#4A2D2D"}

	// Loading spinner color
	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFF"}

	// Derived styles. Rebuilt by ApplyTheme after color overrides.
	SelectionStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionColor)

	DiffAdditionStyle = lipgloss.NewStyle().Foreground(DiffAdditionColor)
	DiffDeletionStyle = lipgloss.NewStyle().Foreground(DiffDeletionColor)
	DiffHunkStyle     = lipgloss.NewStyle().Foreground(DiffHunkColor).Bold(true)
	DiffContextStyle  = lipgloss.NewStyle().Foreground(DiffContextColor)

	DiffAddedWordStyle = lipgloss.NewStyle().
				Foreground(DiffAdditionColor).
				Background(DiffAddedWordBgColor)
	DiffDeletedWordStyle = lipgloss.NewStyle().
				Foreground(DiffDeletionColor).
				Background(DiffDeletedWordBgColor)

	FileModifiedStyle  = lipgloss.NewStyle().Foreground(FileModifiedColor)
	FileAddedStyle     = lipgloss.NewStyle().Foreground(FileAddedColor)
	FileDeletedStyle   = lipgloss.NewStyle().Foreground(FileDeletedColor)
	FileRenamedStyle   = lipgloss.NewStyle().Foreground(FileRenamedColor)
	FileUnmergedStyle  = lipgloss.NewStyle().Foreground(FileUnmergedColor)
	FileUntrackedStyle = lipgloss.NewStyle().Foreground(FileUntrackedColor)

	// Footer hint bar
	FooterStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)
