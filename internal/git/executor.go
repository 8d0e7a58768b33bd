// Package git shells out to the git executable for status, diff and
// staging operations.
package git

import (
	"context"
	"errors"
)

// ErrNotARepository indicates the directory is not inside a git work tree.
var ErrNotARepository = errors.New("not a git repository")

// Executor defines the git operations the staging UI needs.
// This abstraction allows for easy testing with mock implementations.
type Executor interface {
	// RepoRoot returns the absolute path of the repository toplevel.
	// Returns ErrNotARepository when invoked outside a work tree.
	RepoRoot(ctx context.Context) (string, error)

	// Status returns raw `git status --porcelain=v1` output.
	Status(ctx context.Context) (string, error)

	// Diff returns the unified diff of unstaged changes for one path.
	Diff(ctx context.Context, path string) (string, error)

	// DiffCached returns the unified diff of staged changes for one path.
	DiffCached(ctx context.Context, path string) (string, error)

	// ShowHead returns the HEAD content of a path (`git show HEAD:path`).
	ShowHead(ctx context.Context, path string) (string, error)

	// ShowIndex returns the index content of a path (`git show :path`).
	ShowIndex(ctx context.Context, path string) (string, error)

	// Add stages all changes for a path.
	Add(ctx context.Context, path string) error

	// RestoreStaged removes a path's changes from the index.
	RestoreStaged(ctx context.Context, path string) error

	// ApplyCached applies a patch file to the index. With reverse set
	// the patch is unapplied, which unstages the hunk it describes.
	// Either the whole patch applies or none of it; partial application
	// is git's guarantee, not ours.
	ApplyCached(ctx context.Context, patchFile string, reverse bool) error
}
