package diff

import "strings"

// BuildPatch reconstructs minimal patch text from a diff's header lines
// and one selected hunk: header lines, then the hunk's lines, each
// followed by a newline. The result is byte-for-byte valid input for
// `git apply --cached` (forward, to stage) or with --reverse (to
// unstage), provided the apply runs from the repository root the
// header paths are relative to.
func BuildPatch(header []string, h Hunk) string {
	var b strings.Builder
	for _, line := range header {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, line := range h.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
