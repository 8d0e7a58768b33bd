// Package statuspanel implements the interactive staging view: changed
// files on the left, the selected file's diff on the right, with
// hunk-level staging.
package statuspanel

import (
	"context"

	"github.com/dev-shetty/easydiff/internal/diff"
	"github.com/dev-shetty/easydiff/internal/status"
)

// Service is the slice of a staging session the panel needs. Satisfied
// by *session.Session.
type Service interface {
	LoadStatus(ctx context.Context) (status.Snapshot, error)
	LoadDiff(ctx context.Context, path string, staged bool) (diff.ParsedDiff, error)
	StageFile(ctx context.Context, path string) (status.Snapshot, error)
	UnstageFile(ctx context.Context, path string) (status.Snapshot, error)
	StageHunk(ctx context.Context, header []string, h diff.Hunk) (status.Snapshot, error)
	UnstageHunk(ctx context.Context, header []string, h diff.Hunk) (status.Snapshot, error)
}

// Options are the user-configurable rendering switches.
type Options struct {
	ShowFooter    bool
	WordDiff      bool
	MarkdownStyle string
}

// DefaultOptions matches the default config.
func DefaultOptions() Options {
	return Options{
		ShowFooter:    true,
		WordDiff:      true,
		MarkdownStyle: "dark",
	}
}

// section identifies which file list the cursor is in.
type section int

const (
	sectionUnstaged section = iota
	sectionStaged
)

func (s section) String() string {
	if s == sectionStaged {
		return "staged"
	}
	return "unstaged"
}

// viewState tracks the panel lifecycle.
type viewState int

const (
	stateLoading viewState = iota
	stateReady
	stateError
)

// StatusLoadedMsg carries a fresh status snapshot.
type StatusLoadedMsg struct {
	Snapshot status.Snapshot
	Err      error
}

// DiffLoadedMsg carries the parsed diff for one path and side.
type DiffLoadedMsg struct {
	Path   string
	Staged bool
	Diff   diff.ParsedDiff
	Err    error
}

// MutationDoneMsg carries the snapshot observed after a staging
// operation completed. The snapshot was read after git finished, so
// rendering from it never shows a stale list.
type MutationDoneMsg struct {
	Snapshot status.Snapshot
	Err      error
}

// RepoChangedMsg signals that the watcher saw the index or HEAD change.
type RepoChangedMsg struct{}
