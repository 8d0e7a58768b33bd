package diff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_SingleHunk(t *testing.T) {
	input := `diff --git a/file.go b/file.go
index abc1234..def5678 100644
--- a/file.go
+++ b/file.go
@@ -10,6 +10,7 @@ func example() {
 	context line
-	deleted line
+	added line
 	more context
`

	d := Parse(input)
	require.Len(t, d.Header, 4)
	require.Equal(t, "diff --git a/file.go b/file.go", d.Header[0])
	require.Equal(t, "+++ b/file.go", d.Header[3])
	require.Len(t, d.Hunks, 1)

	h := d.Hunks[0]
	require.Equal(t, 10, h.OldStart)
	require.Equal(t, 6, h.OldCount)
	require.Equal(t, 10, h.NewStart)
	require.Equal(t, 7, h.NewCount)
	require.Equal(t, "@@ -10,6 +10,7 @@ func example() {", h.Lines[0])
	require.Len(t, h.Lines, 5)

	require.Len(t, h.DeletedLines, 1)
	require.Equal(t, "\tdeleted line", h.DeletedLines[0].Content)
	require.Equal(t, "-\tdeleted line", h.DeletedLines[0].Raw)
}

func TestParse_AddedLineNumbers(t *testing.T) {
	// A '+' line's post-image number counts all context and added lines
	// before it in the hunk, added to NewStart.
	input := `--- a/f.txt
+++ b/f.txt
@@ -10,1 +10,3 @@
 ctx
+added1
+added2
`

	d := Parse(input)
	require.Len(t, d.Hunks, 1)
	require.Equal(t, []int{11, 12}, d.Hunks[0].AddedLineNumbers)
}

func TestParse_MixedHunkLineNumbers(t *testing.T) {
	input := `--- a/f.txt
+++ b/f.txt
@@ -5,5 +5,6 @@
 line5
 line6
-line7deleted
+line7added
+line7.5new
 line8
`

	d := Parse(input)
	require.Len(t, d.Hunks, 1)
	h := d.Hunks[0]
	// Deletions do not advance the post-image counter.
	require.Equal(t, []int{7, 8}, h.AddedLineNumbers)
	require.Len(t, h.DeletedLines, 1)
	require.Equal(t, "line7deleted", h.DeletedLines[0].Content)
}

func TestParse_OmittedCountsDefaultToOne(t *testing.T) {
	input := `--- a/f.txt
+++ b/f.txt
@@ -5 +7 @@
-old
+new
`

	d := Parse(input)
	require.Len(t, d.Hunks, 1)
	h := d.Hunks[0]
	require.Equal(t, 5, h.OldStart)
	require.Equal(t, 1, h.OldCount)
	require.Equal(t, 7, h.NewStart)
	require.Equal(t, 1, h.NewCount)
}

func TestParse_MultipleHunks(t *testing.T) {
	input := `--- a/f.txt
+++ b/f.txt
@@ -1,3 +1,4 @@ first
 a
+b
 c
@@ -10,2 +11,3 @@ second
 x
+y
+z
`

	d := Parse(input)
	require.Len(t, d.Hunks, 2)
	require.Equal(t, 1, d.Hunks[0].NewStart)
	require.Equal(t, 11, d.Hunks[1].NewStart)
	require.Equal(t, 3, d.Additions())
	require.Equal(t, 0, d.Deletions())
}

func TestParse_Empty(t *testing.T) {
	d := Parse("")
	require.Empty(t, d.Header)
	require.Empty(t, d.Hunks)
	require.True(t, d.IsEmpty())
}

func TestParse_MalformedDegradesToEmpty(t *testing.T) {
	// Unparseable input is not an error: it just has no hunks.
	inputs := []string{
		"random garbage",
		"@@ this is not a valid hunk",
		"--- only old file\n+++ only new file",
		"\n\n\n",
	}

	for _, input := range inputs {
		d := Parse(input)
		require.True(t, d.IsEmpty(), "input %q should parse to empty diff", input)
		require.Empty(t, d.Header)
	}
}

func TestParse_NoNewlineMarkerDoesNotCount(t *testing.T) {
	input := `--- a/f.txt
+++ b/f.txt
@@ -1,2 +1,2 @@
 line one
-line two
\ No newline at end of file
+line two with newline
`

	d := Parse(input)
	require.Len(t, d.Hunks, 1)
	h := d.Hunks[0]
	// The backslash marker occupies no post-image line.
	require.Equal(t, []int{2}, h.AddedLineNumbers)
	require.Len(t, h.Lines, 5)
}

func TestHunk_EndLine(t *testing.T) {
	tests := []struct {
		name     string
		newStart int
		newCount int
		endLine  int
	}{
		{"normal hunk", 10, 3, 12},
		{"single line", 5, 1, 5},
		{"pure deletion is zero-width", 8, 0, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := Hunk{NewStart: tc.newStart, NewCount: tc.newCount}
			require.Equal(t, tc.endLine, h.EndLine())
		})
	}
}

func TestHunkAtLine(t *testing.T) {
	d := ParsedDiff{
		Hunks: []Hunk{
			{NewStart: 5, NewCount: 3},  // covers 5..7
			{NewStart: 12, NewCount: 0}, // pure deletion, zero-width
			{NewStart: 20, NewCount: 2}, // covers 20..21
		},
	}

	idx, h := d.HunkAtLine(6)
	require.Equal(t, 0, idx)
	require.NotNil(t, h)
	require.Equal(t, 5, h.NewStart)

	idx, h = d.HunkAtLine(21)
	require.Equal(t, 2, idx)
	require.NotNil(t, h)

	// Inter-hunk context is not covered by any hunk.
	idx, h = d.HunkAtLine(9)
	require.Equal(t, -1, idx)
	require.Nil(t, h)
}

func TestHunkAtLine_PureDeletionNeverMatches(t *testing.T) {
	d := ParsedDiff{Hunks: []Hunk{{NewStart: 12, NewCount: 0}}}

	for line := 0; line < 30; line++ {
		idx, h := d.HunkAtLine(line)
		require.Equal(t, -1, idx, "line %d must not match a zero-width hunk", line)
		require.Nil(t, h)
	}
}
