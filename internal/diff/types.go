// Package diff parses unified diff output into structured hunks and
// rebuilds single-hunk patches suitable for partial staging.
package diff

// DeletedLine records a removed line both with and without its '-' marker.
// Raw is needed to rebuild patch text; Content is what gets displayed.
type DeletedLine struct {
	Content string // Line text without the leading '-'
	Raw     string // Original diff line including the '-'
}

// Hunk represents a contiguous section of changes in a unified diff.
//
// Lines holds every diff line of the hunk verbatim, starting with the
// "@@ ... @@" header at Lines[0]. AddedLineNumbers are 1-indexed
// positions in the post-image file, one per '+' line, in order.
type Hunk struct {
	OldStart int // Starting line number in the old file
	OldCount int // Number of lines from the old file
	NewStart int // Starting line number in the new file
	NewCount int // Number of lines from the new file

	Lines            []string      // Verbatim hunk lines, header first
	DeletedLines     []DeletedLine // One entry per '-' line, in order
	AddedLineNumbers []int         // Post-image line numbers of '+' lines
}

// EndLine returns the last post-image line covered by the hunk.
// For a pure deletion (NewCount == 0) this is NewStart-1, one before
// the start: the hunk occupies a zero-width insertion point and no
// line number falls inside it.
func (h Hunk) EndLine() int {
	return h.NewStart + h.NewCount - 1
}

// ParsedDiff is the structured form of one file's unified diff output.
//
// Header holds the preamble lines ("diff --git", "index", "---", "+++")
// verbatim. They must be preserved byte-for-byte: git apply validates
// the file markers when a reconstructed patch is fed back to it.
type ParsedDiff struct {
	Header []string
	Hunks  []Hunk
}

// IsEmpty reports whether the diff contains no hunks.
func (d ParsedDiff) IsEmpty() bool {
	return len(d.Hunks) == 0
}

// Additions returns the total number of added lines across all hunks.
func (d ParsedDiff) Additions() int {
	n := 0
	for _, h := range d.Hunks {
		n += len(h.AddedLineNumbers)
	}
	return n
}

// Deletions returns the total number of deleted lines across all hunks.
func (d ParsedDiff) Deletions() int {
	n := 0
	for _, h := range d.Hunks {
		n += len(h.DeletedLines)
	}
	return n
}

// HunkAtLine returns the index and hunk whose post-image range
// [NewStart, EndLine] contains the given 1-indexed line number.
// Lines falling in unchanged regions between hunks return (-1, nil).
// Pure-deletion hunks have a zero-width range and never match.
func (d ParsedDiff) HunkAtLine(line int) (int, *Hunk) {
	for i := range d.Hunks {
		h := &d.Hunks[i]
		if h.NewCount == 0 {
			continue
		}
		if line >= h.NewStart && line <= h.EndLine() {
			return i, h
		}
	}
	return -1, nil
}
