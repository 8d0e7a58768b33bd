package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateString_ShortStringUnchanged(t *testing.T) {
	require.Equal(t, "foo.txt", TruncateString("foo.txt", 20))
}

func TestTruncateString_Truncates(t *testing.T) {
	got := TruncateString("internal/ui/statuspanel/render.go", 20)
	require.LessOrEqual(t, len([]rune(got)), 20)
	require.Contains(t, got, "...")
}

func TestTruncateString_NarrowWidths(t *testing.T) {
	require.Equal(t, "", TruncateString("abc", 0))
	require.Equal(t, "..", TruncateString("abcdef", 2))
	require.Equal(t, "abc", TruncateString("abc", 3))
}

func TestTruncateString_WideRunes(t *testing.T) {
	// Each CJK rune takes two cells.
	got := TruncateString("日本語のファイル.txt", 8)
	require.Contains(t, got, "...")
}
