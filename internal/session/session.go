// Package session ties one repository to one interactive staging
// session. All state lives on the Session value; nothing is global, so
// tests and multiple windows can hold independent sessions.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dev-shetty/easydiff/internal/diff"
	"github.com/dev-shetty/easydiff/internal/git"
	"github.com/dev-shetty/easydiff/internal/log"
	"github.com/dev-shetty/easydiff/internal/status"
)

// ErrTempFile indicates the patch could not be written to a temp file.
// The index is untouched when this is returned.
var ErrTempFile = errors.New("writing patch temp file")

// Session is an open repository plus the git executor bound to its root.
type Session struct {
	id   uuid.UUID
	root string
	git  git.Executor
}

// Open resolves dir to a repository root and returns a session bound to
// it. Returns git.ErrNotARepository (wrapped) when dir is not inside a
// work tree.
func Open(ctx context.Context, dir string) (*Session, error) {
	probe := git.NewRealExecutor(dir)
	root, err := probe.RepoRoot(ctx)
	if err != nil {
		return nil, err
	}

	// Re-root the executor so relative paths from status output resolve
	// regardless of the directory the tool was launched from.
	s := &Session{
		id:   uuid.New(),
		root: root,
		git:  git.NewRealExecutor(root),
	}
	log.Info(log.CatSession, "session opened", "id", s.id, "root", root)
	return s, nil
}

// OpenWith builds a session around an existing executor.
func OpenWith(root string, exec git.Executor) *Session {
	return &Session{
		id:   uuid.New(),
		root: root,
		git:  exec,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Root returns the repository toplevel path.
func (s *Session) Root() string { return s.root }

// Git exposes the underlying executor.
func (s *Session) Git() git.Executor { return s.git }

// LoadStatus reads and parses the current porcelain status.
func (s *Session) LoadStatus(ctx context.Context) (status.Snapshot, error) {
	out, err := s.git.Status(ctx)
	if err != nil {
		return status.Snapshot{}, err
	}
	return status.ParsePorcelain(out), nil
}

// LoadDiff reads and parses the diff for one path. With staged set it
// reads the index-vs-HEAD diff, otherwise the worktree-vs-index diff.
func (s *Session) LoadDiff(ctx context.Context, path string, staged bool) (diff.ParsedDiff, error) {
	var (
		out string
		err error
	)
	if staged {
		out, err = s.git.DiffCached(ctx, path)
	} else {
		out, err = s.git.Diff(ctx, path)
	}
	if err != nil {
		return diff.ParsedDiff{}, err
	}
	return diff.Parse(out), nil
}

// StageFile stages every change in path and returns the refreshed
// status. The returned snapshot is read after the mutation completed,
// so callers never render from a guess.
func (s *Session) StageFile(ctx context.Context, path string) (status.Snapshot, error) {
	if err := s.git.Add(ctx, path); err != nil {
		return status.Snapshot{}, err
	}
	log.Debug(log.CatSession, "staged file", "path", path)
	return s.LoadStatus(ctx)
}

// UnstageFile removes path's changes from the index and returns the
// refreshed status.
func (s *Session) UnstageFile(ctx context.Context, path string) (status.Snapshot, error) {
	if err := s.git.RestoreStaged(ctx, path); err != nil {
		return status.Snapshot{}, err
	}
	log.Debug(log.CatSession, "unstaged file", "path", path)
	return s.LoadStatus(ctx)
}

// StageHunk applies a single hunk to the index and returns the
// refreshed status. The header must be the verbatim preamble of the
// diff the hunk was parsed from.
func (s *Session) StageHunk(ctx context.Context, header []string, h diff.Hunk) (status.Snapshot, error) {
	if err := s.applyHunk(ctx, header, h, false); err != nil {
		return status.Snapshot{}, err
	}
	return s.LoadStatus(ctx)
}

// UnstageHunk reverses a single hunk out of the index and returns the
// refreshed status.
func (s *Session) UnstageHunk(ctx context.Context, header []string, h diff.Hunk) (status.Snapshot, error) {
	if err := s.applyHunk(ctx, header, h, true); err != nil {
		return status.Snapshot{}, err
	}
	return s.LoadStatus(ctx)
}

// applyHunk writes a minimal patch to a temp file and hands it to
// git apply --cached. The temp file is removed whether or not apply
// succeeds. A temp file failure aborts before git runs.
func (s *Session) applyHunk(ctx context.Context, header []string, h diff.Hunk, reverse bool) error {
	patch := diff.BuildPatch(header, h)

	f, err := os.CreateTemp("", "easydiff-*.patch")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTempFile, err)
	}
	name := f.Name()
	defer func() { _ = os.Remove(name) }()

	if _, err := f.WriteString(patch); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrTempFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrTempFile, err)
	}

	if err := s.git.ApplyCached(ctx, name, reverse); err != nil {
		log.ErrorErr(log.CatSession, "hunk apply failed", err, "reverse", reverse)
		return err
	}
	log.Debug(log.CatSession, "applied hunk", "reverse", reverse, "oldStart", h.OldStart, "newStart", h.NewStart)
	return nil
}

// Close releases the session. The executor holds no resources today but
// callers should treat the session as unusable afterwards.
func (s *Session) Close() {
	log.Info(log.CatSession, "session closed", "id", s.id)
}
