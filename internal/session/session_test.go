package session

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dev-shetty/easydiff/internal/diff"
	"github.com/dev-shetty/easydiff/internal/git"
)

// mockExecutor records calls and serves canned responses.
type mockExecutor struct {
	statusOut  string
	diffOut    string
	cachedOut  string
	applyErr   error
	addErr     error
	calls      []string
	patchBytes string
}

func (m *mockExecutor) record(call string) { m.calls = append(m.calls, call) }

func (m *mockExecutor) RepoRoot(context.Context) (string, error) { return "/repo", nil }
func (m *mockExecutor) Status(context.Context) (string, error) {
	m.record("status")
	return m.statusOut, nil
}
func (m *mockExecutor) Diff(_ context.Context, path string) (string, error) {
	m.record("diff " + path)
	return m.diffOut, nil
}
func (m *mockExecutor) DiffCached(_ context.Context, path string) (string, error) {
	m.record("diff-cached " + path)
	return m.cachedOut, nil
}
func (m *mockExecutor) ShowHead(_ context.Context, path string) (string, error)  { return "", nil }
func (m *mockExecutor) ShowIndex(_ context.Context, path string) (string, error) { return "", nil }
func (m *mockExecutor) Add(_ context.Context, path string) error {
	m.record("add " + path)
	return m.addErr
}
func (m *mockExecutor) RestoreStaged(_ context.Context, path string) error {
	m.record("restore " + path)
	return nil
}
func (m *mockExecutor) ApplyCached(_ context.Context, patchFile string, reverse bool) error {
	call := "apply"
	if reverse {
		call = "apply-reverse"
	}
	m.record(call)
	if b, err := os.ReadFile(patchFile); err == nil {
		m.patchBytes = string(b)
	}
	return m.applyErr
}

const sampleDiff = `diff --git a/a.txt b/a.txt
index 1111111..2222222 100644
--- a/a.txt
+++ b/a.txt
@@ -1,3 +1,3 @@
 one
-two
+TWO
 three
`

func TestSession_LoadStatus(t *testing.T) {
	m := &mockExecutor{statusOut: " M a.txt\n?? b.txt\n"}
	s := OpenWith("/repo", m)

	snap, err := s.LoadStatus(context.Background())
	require.NoError(t, err)
	require.Empty(t, snap.Staged)
	require.Len(t, snap.Unstaged, 2)
}

func TestSession_LoadDiff_SelectsSide(t *testing.T) {
	m := &mockExecutor{diffOut: sampleDiff, cachedOut: ""}
	s := OpenWith("/repo", m)
	ctx := context.Background()

	d, err := s.LoadDiff(ctx, "a.txt", false)
	require.NoError(t, err)
	require.Len(t, d.Hunks, 1)

	d, err = s.LoadDiff(ctx, "a.txt", true)
	require.NoError(t, err)
	require.True(t, d.IsEmpty())

	require.Equal(t, []string{"diff a.txt", "diff-cached a.txt"}, m.calls)
}

func TestSession_StageFile_RefreshesAfterMutation(t *testing.T) {
	m := &mockExecutor{statusOut: "M  a.txt\n"}
	s := OpenWith("/repo", m)

	snap, err := s.StageFile(context.Background(), "a.txt")
	require.NoError(t, err)
	require.Len(t, snap.Staged, 1)

	// Status is re-read after add, never before.
	require.Equal(t, []string{"add a.txt", "status"}, m.calls)
}

func TestSession_StageFile_ErrorSkipsRefresh(t *testing.T) {
	m := &mockExecutor{addErr: errors.New("boom")}
	s := OpenWith("/repo", m)

	_, err := s.StageFile(context.Background(), "a.txt")
	require.Error(t, err)
	require.Equal(t, []string{"add a.txt"}, m.calls)
}

func TestSession_UnstageFile(t *testing.T) {
	m := &mockExecutor{statusOut: " M a.txt\n"}
	s := OpenWith("/repo", m)

	snap, err := s.UnstageFile(context.Background(), "a.txt")
	require.NoError(t, err)
	require.Len(t, snap.Unstaged, 1)
	require.Equal(t, []string{"restore a.txt", "status"}, m.calls)
}

func TestSession_StageHunk_WritesExactPatch(t *testing.T) {
	m := &mockExecutor{statusOut: "M  a.txt\n"}
	s := OpenWith("/repo", m)

	d := diff.Parse(sampleDiff)
	require.Len(t, d.Hunks, 1)

	snap, err := s.StageHunk(context.Background(), d.Header, d.Hunks[0])
	require.NoError(t, err)
	require.Len(t, snap.Staged, 1)

	require.Equal(t, []string{"apply", "status"}, m.calls)
	// The patch handed to git is byte-identical to the parsed input.
	require.Equal(t, sampleDiff, m.patchBytes)
}

func TestSession_UnstageHunk_UsesReverse(t *testing.T) {
	m := &mockExecutor{statusOut: " M a.txt\n"}
	s := OpenWith("/repo", m)

	d := diff.Parse(sampleDiff)
	_, err := s.UnstageHunk(context.Background(), d.Header, d.Hunks[0])
	require.NoError(t, err)
	require.Equal(t, []string{"apply-reverse", "status"}, m.calls)
}

func TestSession_StageHunk_ApplyFailureSkipsRefresh(t *testing.T) {
	m := &mockExecutor{applyErr: errors.New("patch does not apply")}
	s := OpenWith("/repo", m)

	d := diff.Parse(sampleDiff)
	_, err := s.StageHunk(context.Background(), d.Header, d.Hunks[0])
	require.Error(t, err)
	require.Equal(t, []string{"apply"}, m.calls)
}

func TestSession_OpenWith_Identity(t *testing.T) {
	m := &mockExecutor{}
	s := OpenWith("/repo", m)

	require.Equal(t, "/repo", s.Root())
	require.NotEqual(t, s.ID(), OpenWith("/repo", m).ID())
}

// initTestRepo creates a real repository with one committed file.
func initTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	run("init")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "test")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\ntwo\nthree\n"), 0o644))
	run("add", ".")
	run("commit", "-m", "initial")

	return dir
}

func TestSession_Open_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	_, err := Open(context.Background(), t.TempDir())
	require.Error(t, err)
	require.True(t, errors.Is(err, git.ErrNotARepository))
}

// Staging then unstaging a hunk restores the repository to its prior
// state, observed through real git.
func TestSession_HunkStageUnstageRoundTrip(t *testing.T) {
	dir := initTestRepo(t)
	ctx := context.Background()

	s, err := Open(ctx, dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\nTWO\nthree\n"), 0o644))

	d, err := s.LoadDiff(ctx, "a.txt", false)
	require.NoError(t, err)
	require.Len(t, d.Hunks, 1)

	// Stage the hunk: the change moves from unstaged to staged.
	snap, err := s.StageHunk(ctx, d.Header, d.Hunks[0])
	require.NoError(t, err)
	require.Len(t, snap.Staged, 1)
	require.Empty(t, snap.Unstaged)

	staged, err := s.LoadDiff(ctx, "a.txt", true)
	require.NoError(t, err)
	require.Len(t, staged.Hunks, 1)

	// Unstage it again: back where we started.
	snap, err = s.UnstageHunk(ctx, staged.Header, staged.Hunks[0])
	require.NoError(t, err)
	require.Empty(t, snap.Staged)
	require.Len(t, snap.Unstaged, 1)

	after, err := s.LoadDiff(ctx, "a.txt", false)
	require.NoError(t, err)
	require.Equal(t, d.Hunks[0].Lines, after.Hunks[0].Lines)
}

func TestSession_FileStageUnstageRoundTrip(t *testing.T) {
	dir := initTestRepo(t)
	ctx := context.Background()

	s, err := Open(ctx, dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\nTWO\nthree\n"), 0o644))

	snap, err := s.StageFile(ctx, "a.txt")
	require.NoError(t, err)
	require.Len(t, snap.Staged, 1)
	require.Empty(t, snap.Unstaged)

	snap, err = s.UnstageFile(ctx, "a.txt")
	require.NoError(t, err)
	require.Empty(t, snap.Staged)
	require.Len(t, snap.Unstaged, 1)
}

func TestSession_Open_RootIsToplevel(t *testing.T) {
	dir := initTestRepo(t)
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	s, err := Open(context.Background(), sub)
	require.NoError(t, err)
	defer s.Close()

	// Root resolves to the toplevel even when opened from a subdir.
	require.True(t, strings.HasSuffix(filepath.ToSlash(s.Root()), filepath.Base(dir)))
}
