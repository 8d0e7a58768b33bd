package statuspanel

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dev-shetty/easydiff/internal/diff"
)

// Word diff constants for performance bounds.
const (
	// wordDiffMaxLineLength skips word diff for lines exceeding this length.
	wordDiffMaxLineLength = 500
	// wordDiffMaxPairs limits word diff computation to first N pairs per hunk.
	wordDiffMaxPairs = 100
	// wordDiffTimeout is the maximum time allowed for word diff per file.
	wordDiffTimeout = 50 * time.Millisecond
)

// wordSegmentType indicates whether a segment is unchanged, added, or deleted.
type wordSegmentType int

const (
	segmentUnchanged wordSegmentType = iota
	segmentAdded
	segmentDeleted
)

// wordSegment represents a run of text with its diff status.
type wordSegment struct {
	Type wordSegmentType
	Text string
}

// wordDiffResult contains the word-level diff for one deletion/addition pair.
type wordDiffResult struct {
	OldSegments []wordSegment
	NewSegments []wordSegment
}

// linePair is an adjacent deletion+addition inside a hunk, indexed into
// Hunk.Lines.
type linePair struct {
	deletedIdx int
	addedIdx   int
}

// tokenize splits a line into words, punctuation and whitespace runs.
// "foo.bar()" becomes ["foo", ".", "bar", "(", ")"].
func tokenize(line string) []string {
	if line == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		switch {
		case unicode.IsSpace(r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// computeWordDiff diffs two lines at token granularity.
func computeWordDiff(oldLine, newLine string) wordDiffResult {
	if oldLine == "" && newLine == "" {
		return wordDiffResult{}
	}
	if oldLine == "" {
		return wordDiffResult{
			NewSegments: []wordSegment{{Type: segmentAdded, Text: newLine}},
		}
	}
	if newLine == "" {
		return wordDiffResult{
			OldSegments: []wordSegment{{Type: segmentDeleted, Text: oldLine}},
		}
	}

	// Join tokens with NUL so diffmatchpatch aligns on token boundaries.
	oldText := strings.Join(tokenize(oldLine), "\x00")
	newText := strings.Join(tokenize(newLine), "\x00")

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var oldSegments, newSegments []wordSegment
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\x00", "")
		if text == "" {
			continue
		}

		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldSegments = append(oldSegments, wordSegment{Type: segmentUnchanged, Text: text})
			newSegments = append(newSegments, wordSegment{Type: segmentUnchanged, Text: text})
		case diffmatchpatch.DiffDelete:
			oldSegments = append(oldSegments, wordSegment{Type: segmentDeleted, Text: text})
		case diffmatchpatch.DiffInsert:
			newSegments = append(newSegments, wordSegment{Type: segmentAdded, Text: text})
		}
	}

	return wordDiffResult{OldSegments: oldSegments, NewSegments: newSegments}
}

// findLinePairs finds adjacent "-" then "+" lines in a hunk. Lines[0]
// is the hunk header and never participates.
func findLinePairs(h diff.Hunk) []linePair {
	var pairs []linePair

	for i := 1; i < len(h.Lines)-1; i++ {
		if strings.HasPrefix(h.Lines[i], "-") && strings.HasPrefix(h.Lines[i+1], "+") {
			pairs = append(pairs, linePair{deletedIdx: i, addedIdx: i + 1})
			i++
		}
	}

	return pairs
}

// hunkWordDiff maps Hunk.Lines indexes to their word diff.
type hunkWordDiff struct {
	Results map[int]wordDiffResult
}

// computeHunkWordDiff computes word-level diffs for one hunk, respecting
// the pair limit and line length bound.
func computeHunkWordDiff(ctx context.Context, h diff.Hunk) hunkWordDiff {
	result := hunkWordDiff{Results: make(map[int]wordDiffResult)}

	pairs := findLinePairs(h)
	if len(pairs) == 0 {
		return result
	}
	if len(pairs) > wordDiffMaxPairs {
		pairs = pairs[:wordDiffMaxPairs]
	}

	for _, pair := range pairs {
		select {
		case <-ctx.Done():
			return result
		default:
		}

		oldContent := strings.TrimPrefix(h.Lines[pair.deletedIdx], "-")
		newContent := strings.TrimPrefix(h.Lines[pair.addedIdx], "+")

		if len(oldContent) > wordDiffMaxLineLength || len(newContent) > wordDiffMaxLineLength {
			continue
		}

		wd := computeWordDiff(oldContent, newContent)
		result.Results[pair.deletedIdx] = wd
		result.Results[pair.addedIdx] = wd
	}

	return result
}

// fileWordDiff holds word diffs for every hunk of the displayed diff.
type fileWordDiff struct {
	HunkDiffs map[int]hunkWordDiff
	TimedOut  bool
}

// computeFileWordDiff computes word-level diffs for a whole parsed diff
// under the per-file timeout.
func computeFileWordDiff(d diff.ParsedDiff) fileWordDiff {
	result := fileWordDiff{HunkDiffs: make(map[int]hunkWordDiff)}

	if len(d.Hunks) == 0 {
		return result
	}

	ctx, cancel := context.WithTimeout(context.Background(), wordDiffTimeout)
	defer cancel()

	for i, h := range d.Hunks {
		select {
		case <-ctx.Done():
			result.TimedOut = true
			return result
		default:
		}

		hd := computeHunkWordDiff(ctx, h)
		if len(hd.Results) > 0 {
			result.HunkDiffs[i] = hd
		}
	}

	return result
}

// segmentsFor returns the word segments for one line, or nil when word
// diff was not computed for it.
func (f fileWordDiff) segmentsFor(hunkIdx, lineIdx int, deleted bool) []wordSegment {
	hd, ok := f.HunkDiffs[hunkIdx]
	if !ok {
		return nil
	}
	wd, ok := hd.Results[lineIdx]
	if !ok {
		return nil
	}
	if deleted {
		return wd.OldSegments
	}
	return wd.NewSegments
}
