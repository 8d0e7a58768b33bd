// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"nord":             NordPreset,
}

// DefaultPreset is the stock easydiff color scheme.
// Color values match the AdaptiveColor Dark values in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default easydiff theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CCCCCC",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault: "#696969",
		TokenBorderFocus:   "#FFFFFF",
		TokenSelection:     "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusError:   "#FF8787",

		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		TokenFileModified:  "#FECA57",
		TokenFileAdded:     "#73F59F",
		TokenFileDeleted:   "#FF8787",
		TokenFileRenamed:   "#54A0FF",
		TokenFileUnmerged:  "#CBA6F7",
		TokenFileUntracked: "#777777",

		TokenDiffAddition:      "#73F59F",
		TokenDiffDeletion:      "#FF8787",
		TokenDiffHunk:          "#94E2D5",
		TokenDiffContext:       "#999999",
		TokenDiffAddedWordBg:   "#2D4A2D",
		TokenDiffDeletedWordBg: "#4A2D2D",

		TokenSpinner: "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CDD6F4", // text
		TokenTextSecondary: "#BAC2DE", // subtext1
		TokenTextMuted:     "#6C7086", // overlay0

		TokenBorderDefault: "#6C7086", // overlay0
		TokenBorderFocus:   "#CDD6F4", // text
		TokenSelection:     "#89B4FA", // blue

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusError:   "#F38BA8", // red

		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0

		TokenFileModified:  "#F9E2AF", // yellow
		TokenFileAdded:     "#A6E3A1", // green
		TokenFileDeleted:   "#F38BA8", // red
		TokenFileRenamed:   "#89B4FA", // blue
		TokenFileUnmerged:  "#CBA6F7", // mauve
		TokenFileUntracked: "#585B70", // surface2

		TokenDiffAddition:      "#A6E3A1", // green
		TokenDiffDeletion:      "#F38BA8", // red
		TokenDiffHunk:          "#94E2D5", // teal
		TokenDiffContext:       "#A6ADC8", // subtext0
		TokenDiffAddedWordBg:   "#2E4235", // darkened green
		TokenDiffDeletedWordBg: "#45293A", // darkened red

		TokenSpinner: "#CBA6F7", // mauve
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#ECEFF4", // snow storm 3
		TokenTextSecondary: "#E5E9F0", // snow storm 2
		TokenTextMuted:     "#4C566A", // polar night 4

		TokenBorderDefault: "#4C566A", // polar night 4
		TokenBorderFocus:   "#ECEFF4", // snow storm 3
		TokenSelection:     "#88C0D0", // frost 2

		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusError:   "#BF616A", // aurora red

		TokenOverlayTitle:  "#ECEFF4", // snow storm 3
		TokenOverlayBorder: "#4C566A", // polar night 4

		TokenFileModified:  "#EBCB8B", // aurora yellow
		TokenFileAdded:     "#A3BE8C", // aurora green
		TokenFileDeleted:   "#BF616A", // aurora red
		TokenFileRenamed:   "#81A1C1", // frost 3
		TokenFileUnmerged:  "#B48EAD", // aurora purple
		TokenFileUntracked: "#434C5E", // polar night 3

		TokenDiffAddition:      "#A3BE8C", // aurora green
		TokenDiffDeletion:      "#BF616A", // aurora red
		TokenDiffHunk:          "#8FBCBB", // frost 1
		TokenDiffContext:       "#D8DEE9", // snow storm 1
		TokenDiffAddedWordBg:   "#3B4A3A", // darkened green
		TokenDiffDeletedWordBg: "#4A3B3E", // darkened red

		TokenSpinner: "#88C0D0", // frost 2
	},
}
