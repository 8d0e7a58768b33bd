package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestApplyTheme_UnknownPreset(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Preset: "solarized-disco"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme preset")
}

func TestApplyTheme_UnknownToken(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Colors: map[string]string{"diff.sparkles": "#FFFFFF"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color token")
}

func TestApplyTheme_InvalidHex(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Colors: map[string]string{"diff.addition": "green"}})
	require.Error(t, err)

	err = ApplyTheme(ThemeConfig{Colors: map[string]string{"diff.addition": "#GGGGGG"}})
	require.Error(t, err)

	err = ApplyTheme(ThemeConfig{Colors: map[string]string{"diff.addition": "#FFFF"}})
	require.Error(t, err)
}

func TestApplyTheme_OverrideWins(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, ApplyTheme(ThemeConfig{}))
	})

	err := ApplyTheme(ThemeConfig{
		Preset: "catppuccin-mocha",
		Colors: map[string]string{"diff.addition": "#123456"},
	})
	require.NoError(t, err)

	want := lipgloss.AdaptiveColor{Light: "#123456", Dark: "#123456"}
	require.Equal(t, want, DiffAdditionColor)
	// Untouched tokens come from the preset.
	require.Equal(t, "#F38BA8", DiffDeletionColor.Dark)
}

func TestPresets_CoverAllTokens(t *testing.T) {
	for name, preset := range Presets {
		for _, token := range AllTokens() {
			_, ok := preset.Colors[token]
			require.True(t, ok, "preset %s missing token %s", name, token)
		}
	}
}
