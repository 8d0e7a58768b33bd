// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Overrides apply to both light and dark terminals.
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	set := func(token ColorToken, dst *lipgloss.AdaptiveColor) {
		if c, ok := colors[token]; ok {
			*dst = makeColor(c)
		}
	}

	set(TokenTextPrimary, &TextPrimaryColor)
	set(TokenTextSecondary, &TextSecondaryColor)
	set(TokenTextMuted, &TextMutedColor)

	set(TokenBorderDefault, &BorderDefaultColor)
	set(TokenBorderFocus, &BorderFocusColor)
	set(TokenSelection, &SelectionColor)

	set(TokenStatusSuccess, &StatusSuccessColor)
	set(TokenStatusError, &StatusErrorColor)

	set(TokenOverlayTitle, &OverlayTitleColor)
	set(TokenOverlayBorder, &OverlayBorderColor)

	set(TokenFileModified, &FileModifiedColor)
	set(TokenFileAdded, &FileAddedColor)
	set(TokenFileDeleted, &FileDeletedColor)
	set(TokenFileRenamed, &FileRenamedColor)
	set(TokenFileUnmerged, &FileUnmergedColor)
	set(TokenFileUntracked, &FileUntrackedColor)

	set(TokenDiffAddition, &DiffAdditionColor)
	set(TokenDiffDeletion, &DiffDeletionColor)
	set(TokenDiffHunk, &DiffHunkColor)
	set(TokenDiffContext, &DiffContextColor)
	set(TokenDiffAddedWordBg, &DiffAddedWordBgColor)
	set(TokenDiffDeletedWordBg, &DiffDeletedWordBgColor)

	set(TokenSpinner, &SpinnerColor)
}

// rebuildStyles recreates all Style objects with updated colors.
// This is necessary because lipgloss.Style objects capture colors at creation time.
func rebuildStyles() {
	SelectionStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionColor)

	DiffAdditionStyle = lipgloss.NewStyle().Foreground(DiffAdditionColor)
	DiffDeletionStyle = lipgloss.NewStyle().Foreground(DiffDeletionColor)
	DiffHunkStyle = lipgloss.NewStyle().Foreground(DiffHunkColor).Bold(true)
	DiffContextStyle = lipgloss.NewStyle().Foreground(DiffContextColor)

	DiffAddedWordStyle = lipgloss.NewStyle().
		Foreground(DiffAdditionColor).
		Background(DiffAddedWordBgColor)
	DiffDeletedWordStyle = lipgloss.NewStyle().
		Foreground(DiffDeletionColor).
		Background(DiffDeletedWordBgColor)

	FileModifiedStyle = lipgloss.NewStyle().Foreground(FileModifiedColor)
	FileAddedStyle = lipgloss.NewStyle().Foreground(FileAddedColor)
	FileDeletedStyle = lipgloss.NewStyle().Foreground(FileDeletedColor)
	FileRenamedStyle = lipgloss.NewStyle().Foreground(FileRenamedColor)
	FileUnmergedStyle = lipgloss.NewStyle().Foreground(FileUnmergedColor)
	FileUntrackedStyle = lipgloss.NewStyle().Foreground(FileUntrackedColor)

	FooterStyle = lipgloss.NewStyle().
		Foreground(TextMutedColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true).
		Padding(1, 2)
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
