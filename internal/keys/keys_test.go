package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_StagingBindings(t *testing.T) {
	require.Equal(t, []string{"s"}, Default.StageItem.Keys())
	require.Equal(t, []string{"u"}, Default.UnstageItem.Keys())
}

func TestDefaultKeyMap_HunkNavigation(t *testing.T) {
	require.Equal(t, []string{"]"}, Default.NextHunk.Keys())
	require.Equal(t, []string{"["}, Default.PrevHunk.Keys())
}

func TestDefaultKeyMap_NoOverlaps(t *testing.T) {
	bindings := [][]string{
		Default.Up.Keys(),
		Default.Down.Keys(),
		Default.NextFile.Keys(),
		Default.PrevFile.Keys(),
		Default.NextHunk.Keys(),
		Default.PrevHunk.Keys(),
		Default.TopOfDiff.Keys(),
		Default.EndOfDiff.Keys(),
		Default.StageItem.Keys(),
		Default.UnstageItem.Keys(),
		Default.SwitchSection.Keys(),
		Default.Refresh.Keys(),
		Default.Help.Keys(),
		Default.Escape.Keys(),
		Default.Quit.Keys(),
	}

	seen := map[string]bool{}
	for _, keys := range bindings {
		for _, k := range keys {
			require.False(t, seen[k], "key %q bound twice", k)
			seen[k] = true
		}
	}
}

func TestDefaultKeyMap_HelpText(t *testing.T) {
	help := Default.StageItem.Help()
	require.Equal(t, "s", help.Key)
	require.NotEmpty(t, help.Desc)
}
