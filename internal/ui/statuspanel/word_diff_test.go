package statuspanel

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dev-shetty/easydiff/internal/diff"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"foo", []string{"foo"}},
		{"foo bar", []string{"foo", " ", "bar"}},
		{"foo.bar()", []string{"foo", ".", "bar", "(", ")"}},
		{"a := b + 1", []string{"a", " ", ":", "=", " ", "b", " ", "+", " ", "1"}},
		{"  x", []string{" ", " ", "x"}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tokenize(tt.input), "input %q", tt.input)
	}
}

func TestComputeWordDiff_SingleTokenChange(t *testing.T) {
	wd := computeWordDiff("return foo.Bar()", "return foo.Baz()")

	joinOld := segmentText(wd.OldSegments)
	joinNew := segmentText(wd.NewSegments)
	require.Equal(t, "return foo.Bar()", joinOld)
	require.Equal(t, "return foo.Baz()", joinNew)

	require.True(t, hasSegment(wd.OldSegments, segmentDeleted, "r"))
	require.True(t, hasSegment(wd.NewSegments, segmentAdded, "z"))
	require.True(t, hasSegment(wd.OldSegments, segmentUnchanged, "return"))
	require.False(t, hasSegment(wd.OldSegments, segmentDeleted, "return"))
}

func TestComputeWordDiff_EmptySides(t *testing.T) {
	wd := computeWordDiff("", "added")
	require.Empty(t, wd.OldSegments)
	require.Equal(t, []wordSegment{{Type: segmentAdded, Text: "added"}}, wd.NewSegments)

	wd = computeWordDiff("gone", "")
	require.Equal(t, []wordSegment{{Type: segmentDeleted, Text: "gone"}}, wd.OldSegments)
	require.Empty(t, wd.NewSegments)

	wd = computeWordDiff("", "")
	require.Empty(t, wd.OldSegments)
	require.Empty(t, wd.NewSegments)
}

func TestFindLinePairs(t *testing.T) {
	h := diff.Hunk{Lines: []string{
		"@@ -1,4 +1,4 @@",
		" context",
		"-old line",
		"+new line",
		" more context",
	}}

	pairs := findLinePairs(h)
	require.Equal(t, []linePair{{deletedIdx: 2, addedIdx: 3}}, pairs)
}

func TestFindLinePairs_HeaderNeverPairs(t *testing.T) {
	// A pure-addition hunk header starts with "@" and must not pair with
	// the "+" line after it.
	h := diff.Hunk{Lines: []string{
		"@@ -1,0 +1,1 @@",
		"+brand new",
	}}

	require.Empty(t, findLinePairs(h))
}

func TestFindLinePairs_ConsecutivePairsDoNotOverlap(t *testing.T) {
	h := diff.Hunk{Lines: []string{
		"@@ -1,2 +1,2 @@",
		"-a",
		"+A",
		"-b",
		"+B",
	}}

	pairs := findLinePairs(h)
	require.Equal(t, []linePair{
		{deletedIdx: 1, addedIdx: 2},
		{deletedIdx: 3, addedIdx: 4},
	}, pairs)
}

func TestFindLinePairs_DeletionRunPairsLastWithFirstAddition(t *testing.T) {
	h := diff.Hunk{Lines: []string{
		"@@ -1,2 +1,1 @@",
		"-first",
		"-second",
		"+merged",
	}}

	pairs := findLinePairs(h)
	require.Equal(t, []linePair{{deletedIdx: 2, addedIdx: 3}}, pairs)
}

func TestComputeHunkWordDiff_SkipsLongLines(t *testing.T) {
	long := strings.Repeat("x", wordDiffMaxLineLength+1)
	h := diff.Hunk{Lines: []string{
		"@@ -1,1 +1,1 @@",
		"-" + long,
		"+" + long + "y",
	}}

	hd := computeHunkWordDiff(context.Background(), h)
	require.Empty(t, hd.Results)
}

func TestComputeHunkWordDiff_PairLimit(t *testing.T) {
	lines := []string{"@@ -1,200 +1,200 @@"}
	for i := 0; i < wordDiffMaxPairs+20; i++ {
		lines = append(lines, fmt.Sprintf("-old %d", i), fmt.Sprintf("+new %d", i))
	}
	h := diff.Hunk{Lines: lines}

	hd := computeHunkWordDiff(context.Background(), h)
	// Each pair stores a result under both line indexes.
	require.Len(t, hd.Results, wordDiffMaxPairs*2)
}

func TestComputeHunkWordDiff_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := diff.Hunk{Lines: []string{
		"@@ -1,1 +1,1 @@",
		"-old",
		"+new",
	}}

	hd := computeHunkWordDiff(ctx, h)
	require.Empty(t, hd.Results)
}

func TestComputeFileWordDiff(t *testing.T) {
	d := diff.Parse(fakeDiff)
	f := computeFileWordDiff(d)

	require.False(t, f.TimedOut)
	// Hunk 0 has the -two/+TWO pair, hunk 1 has only an addition.
	require.Contains(t, f.HunkDiffs, 0)
	require.NotContains(t, f.HunkDiffs, 1)

	segs := f.segmentsFor(0, 2, true)
	require.NotNil(t, segs)
	require.Equal(t, "two", segmentText(segs))

	segs = f.segmentsFor(0, 3, false)
	require.Equal(t, "TWO", segmentText(segs))
}

func TestSegmentsFor_MissingReturnsNil(t *testing.T) {
	f := computeFileWordDiff(diff.ParsedDiff{})
	require.Nil(t, f.segmentsFor(0, 1, true))
}

func segmentText(segs []wordSegment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func hasSegment(segs []wordSegment, typ wordSegmentType, contains string) bool {
	for _, s := range segs {
		if s.Type == typ && strings.Contains(s.Text, contains) {
			return true
		}
	}
	return false
}
