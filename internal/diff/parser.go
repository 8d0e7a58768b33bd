package diff

import (
	"regexp"
	"strconv"
	"strings"
)

// hunkHeaderRegex matches "@@ -oldStart[,oldCount] +newStart[,newCount] @@..."
// Omitted counts default to 1 per the unified diff format.
var hunkHeaderRegex = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@(.*)$`)

// Parse turns the line-oriented text of a unified diff (as produced by
// `git diff` or `git diff --cached` for a single path) into a ParsedDiff.
//
// Lines before the first hunk header become the Header; every
// subsequent line belongs to the current hunk until the next header or
// end of input. Malformed or empty input degrades to an empty
// ParsedDiff rather than an error: a diff that cannot be parsed simply
// has no hunks to show.
func Parse(text string) ParsedDiff {
	if text == "" {
		return ParsedDiff{}
	}

	lines := strings.Split(text, "\n")
	// A trailing newline produces one empty trailing element. Drop it so
	// it does not get counted as a context line of the last hunk.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var (
		header      []string
		hunks       []Hunk
		current     *Hunk
		newLineOffs int // context+added lines seen so far in current hunk
	)

	flush := func() {
		if current != nil {
			hunks = append(hunks, *current)
			current = nil
		}
	}

	for _, line := range lines {
		if m := hunkHeaderRegex.FindStringSubmatch(line); m != nil {
			flush()
			current = &Hunk{
				OldStart: atoiDefault(m[1], 0),
				OldCount: atoiDefault(m[2], 1),
				NewStart: atoiDefault(m[3], 0),
				NewCount: atoiDefault(m[4], 1),
				Lines:    []string{line},
			}
			newLineOffs = 0
			continue
		}

		if current == nil {
			header = append(header, line)
			continue
		}

		current.Lines = append(current.Lines, line)

		switch {
		case strings.HasPrefix(line, "-"):
			current.DeletedLines = append(current.DeletedLines, DeletedLine{
				Content: line[1:],
				Raw:     line,
			})
		case strings.HasPrefix(line, "+"):
			// Post-image position: NewStart plus the context and added
			// lines already emitted in this hunk.
			current.AddedLineNumbers = append(current.AddedLineNumbers, current.NewStart+newLineOffs)
			newLineOffs++
		case strings.HasPrefix(line, "\\"):
			// "\ No newline at end of file" occupies no line in either image.
		default:
			// Context line (leading space, or empty line in some git output).
			newLineOffs++
		}
	}
	flush()

	// No hunks means the input wasn't a diff we understand; present it
	// as empty rather than keeping a meaningless header.
	if len(hunks) == 0 {
		return ParsedDiff{}
	}

	return ParsedDiff{Header: header, Hunks: hunks}
}

// atoiDefault parses s, returning def when s is empty or invalid.
func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
