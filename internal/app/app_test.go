package app

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/dev-shetty/easydiff/internal/session"
	"github.com/dev-shetty/easydiff/internal/ui/statuspanel"
)

// stubExecutor is the minimal git backend the app model needs for
// lifecycle tests.
type stubExecutor struct{}

func (stubExecutor) RepoRoot(context.Context) (string, error)            { return "/repo", nil }
func (stubExecutor) Status(context.Context) (string, error)              { return " M a.txt\n", nil }
func (stubExecutor) Diff(_ context.Context, _ string) (string, error)    { return "", nil }
func (stubExecutor) DiffCached(context.Context, string) (string, error)  { return "", nil }
func (stubExecutor) ShowHead(context.Context, string) (string, error)    { return "", nil }
func (stubExecutor) ShowIndex(context.Context, string) (string, error)   { return "", nil }
func (stubExecutor) Add(context.Context, string) error                   { return nil }
func (stubExecutor) RestoreStaged(context.Context, string) error         { return nil }
func (stubExecutor) ApplyCached(context.Context, string, bool) error     { return nil }

func newTestModel() *Model {
	sess := session.OpenWith("/repo", stubExecutor{})
	return New(sess, nil, statuspanel.DefaultOptions())
}

func TestModel_InitLoadsStatus(t *testing.T) {
	m := newTestModel()

	cmd := m.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	loaded, ok := msg.(statuspanel.StatusLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	require.Len(t, loaded.Snapshot.Unstaged, 1)
}

func TestModel_UpdateDelegatesToPanel(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Same(t, m, next, "update should return the same root model")
}

func TestModel_ViewEmptyBeforeSize(t *testing.T) {
	m := newTestModel()
	require.Empty(t, m.View())
}

func TestModel_CloseWithoutWatcher(t *testing.T) {
	m := newTestModel()
	require.NoError(t, m.Close())
}
