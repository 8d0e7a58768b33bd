// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	// Borders and selection
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"
	TokenSelection     ColorToken = "selection"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusError   ColorToken = "status.error"

	// Overlays
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// File status letters
	TokenFileModified  ColorToken = "file.modified"
	TokenFileAdded     ColorToken = "file.added"
	TokenFileDeleted   ColorToken = "file.deleted"
	TokenFileRenamed   ColorToken = "file.renamed"
	TokenFileUnmerged  ColorToken = "file.unmerged"
	TokenFileUntracked ColorToken = "file.untracked"

	// Diff lines
	TokenDiffAddition      ColorToken = "diff.addition"
	TokenDiffDeletion      ColorToken = "diff.deletion"
	TokenDiffHunk          ColorToken = "diff.hunk"
	TokenDiffContext       ColorToken = "diff.context"
	TokenDiffAddedWordBg   ColorToken = "diff.addition.word.bg"
	TokenDiffDeletedWordBg ColorToken = "diff.deletion.word.bg"

	// Misc
	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,

		TokenBorderDefault,
		TokenBorderFocus,
		TokenSelection,

		TokenStatusSuccess,
		TokenStatusError,

		TokenOverlayTitle,
		TokenOverlayBorder,

		TokenFileModified,
		TokenFileAdded,
		TokenFileDeleted,
		TokenFileRenamed,
		TokenFileUnmerged,
		TokenFileUntracked,

		TokenDiffAddition,
		TokenDiffDeletion,
		TokenDiffHunk,
		TokenDiffContext,
		TokenDiffAddedWordBg,
		TokenDiffDeletedWordBg,

		TokenSpinner,
	}
}
