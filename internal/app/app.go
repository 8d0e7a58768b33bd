// Package app wires the staging view into a Bubble Tea program and owns
// shutdown of the session and watcher.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dev-shetty/easydiff/internal/log"
	"github.com/dev-shetty/easydiff/internal/session"
	"github.com/dev-shetty/easydiff/internal/ui/statuspanel"
	"github.com/dev-shetty/easydiff/internal/watcher"
)

// Model is the program root. It delegates everything to the staging
// panel; its own job is lifecycle.
type Model struct {
	panel statuspanel.Model

	sess *session.Session
	w    *watcher.Watcher
}

// New creates the program model. The watcher may be nil when watching
// is disabled.
func New(sess *session.Session, w *watcher.Watcher, opts statuspanel.Options) *Model {
	return &Model{
		panel: statuspanel.New(sess, sess.Root()).WithOptions(opts),
		sess:  sess,
		w:     w,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.panel.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	panel, cmd := m.panel.Update(msg)
	m.panel = panel
	return m, cmd
}

func (m *Model) View() string {
	return m.panel.View()
}

// Close releases the watcher and session. Safe to call after the
// program exits.
func (m *Model) Close() error {
	var err error
	if m.w != nil {
		if stopErr := m.w.Stop(); stopErr != nil {
			log.ErrorErr(log.CatWatch, "stopping watcher", stopErr)
			err = stopErr
		}
	}
	m.sess.Close()
	return err
}
