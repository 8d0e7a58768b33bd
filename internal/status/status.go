// Package status parses porcelain-v1 git status output into staged and
// unstaged file entries.
package status

import "strings"

// Code is a closed enumeration of git single-letter status codes.
// Representing the codes as an enum (rather than raw letters dispatched
// through lookup tables) makes unhandled cases visible at compile time.
type Code int

const (
	Modified Code = iota
	Added
	Deleted
	Renamed
	Copied
	Unmerged
	Untracked
)

// Letter returns the porcelain letter for the code.
func (c Code) Letter() string {
	switch c {
	case Modified:
		return "M"
	case Added:
		return "A"
	case Deleted:
		return "D"
	case Renamed:
		return "R"
	case Copied:
		return "C"
	case Unmerged:
		return "U"
	case Untracked:
		return "?"
	default:
		return " "
	}
}

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Deleted:
		return "deleted"
	case Renamed:
		return "renamed"
	case Copied:
		return "copied"
	case Unmerged:
		return "unmerged"
	case Untracked:
		return "untracked"
	default:
		return "unknown"
	}
}

// codeForLetter maps a porcelain column letter to a Code.
func codeForLetter(b byte) (Code, bool) {
	switch b {
	case 'M', 'T':
		return Modified, true
	case 'A':
		return Added, true
	case 'D':
		return Deleted, true
	case 'R':
		return Renamed, true
	case 'C':
		return Copied, true
	case 'U':
		return Unmerged, true
	case '?':
		return Untracked, true
	default:
		return 0, false
	}
}

// FileEntry is one changed path from a status refresh.
//
// RawPath preserves the porcelain token exactly as printed, including
// the "old -> new" rename form; Path is the display/target path (the
// new name for renames). Entries are rebuilt in full on every refresh
// and never mutated in place.
type FileEntry struct {
	Path    string
	RawPath string
	Code    Code
	Staged  bool
}

// Snapshot holds the two classified views of one status read.
type Snapshot struct {
	Staged   []FileEntry
	Unstaged []FileEntry
}

// IsEmpty reports whether the snapshot contains no entries.
func (s Snapshot) IsEmpty() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0
}

// ParsePorcelain classifies `git status --porcelain=v1` output lines
// ("XY path" or "XY old -> new") into staged and unstaged entries.
//
// The index column (X) drives the staged view, excluding space and '?'.
// The worktree column (Y) drives the unstaged view, excluding space;
// untracked files always appear unstaged with code Untracked regardless
// of the worktree column value.
func ParsePorcelain(output string) Snapshot {
	var snap Snapshot

	for _, line := range strings.Split(output, "\n") {
		// Porcelain lines are "XY<space>path": anything shorter is noise.
		if len(line) < 4 {
			continue
		}
		x, y := line[0], line[1]
		rawPath := line[3:]

		path := rawPath
		if _, after, found := strings.Cut(rawPath, " -> "); found {
			path = after
		}

		if x == '?' {
			snap.Unstaged = append(snap.Unstaged, FileEntry{
				Path:    path,
				RawPath: rawPath,
				Code:    Untracked,
				Staged:  false,
			})
			continue
		}

		if code, ok := codeForLetter(x); ok {
			snap.Staged = append(snap.Staged, FileEntry{
				Path:    path,
				RawPath: rawPath,
				Code:    code,
				Staged:  true,
			})
		}
		if code, ok := codeForLetter(y); ok {
			snap.Unstaged = append(snap.Unstaged, FileEntry{
				Path:    path,
				RawPath: rawPath,
				Code:    code,
				Staged:  false,
			})
		}
	}

	return snap
}
